package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driving"
)

// fakeBriefService records calls and returns canned values.
type fakeBriefService struct {
	lastRequest domain.BriefRequest
	payload     string
	brief       *domain.Brief
	briefs      []domain.Brief
	err         error
}

var _ driving.BriefService = (*fakeBriefService)(nil)

func (f *fakeBriefService) Generate(_ context.Context, req domain.BriefRequest) (*domain.Brief, error) {
	f.lastRequest = req
	return f.brief, f.err
}

func (f *fakeBriefService) AssemblePayload(_ context.Context, req domain.BriefRequest) (string, error) {
	f.lastRequest = req
	return f.payload, f.err
}

func (f *fakeBriefService) List(_ context.Context) ([]domain.Brief, error) {
	return f.briefs, f.err
}

func (f *fakeBriefService) Get(_ context.Context, id string) (*domain.Brief, error) {
	for i := range f.briefs {
		if f.briefs[i].ID == id {
			return &f.briefs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// withBriefService swaps the injected brief service for one test.
func withBriefService(t *testing.T, svc driving.BriefService) {
	t.Helper()
	original := briefService
	briefService = svc
	t.Cleanup(func() {
		briefService = original
	})
}

// resetGenerateFlags restores generate flag state between tests.
// Cobra's required-flag validation reads pflag's Changed state, which
// persists across Execute calls, so it must be cleared too.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
}
