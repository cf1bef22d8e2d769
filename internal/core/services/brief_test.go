package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
)

// fakeReader reads files straight from disk as UTF-8 text.
type fakeReader struct{}

func (fakeReader) Read(ref domain.FileRef) (string, error) {
	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return "", domain.ErrNotFound
	}
	return string(data), nil
}

// fakeLLM records the last call and returns a canned deck.
type fakeLLM struct {
	lastSystem  string
	lastPayload string
	response    string
	err         error
	calls       int
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	f.calls++
	f.lastPayload = prompt
	return f.response, f.err
}

func (f *fakeLLM) Chat(_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	f.calls++
	for _, m := range messages {
		switch m.Role {
		case "system":
			f.lastSystem = m.Content
		case "user":
			f.lastPayload = m.Content
		}
	}
	return f.response, f.err
}

func (f *fakeLLM) ModelName() string            { return "fake-model" }
func (f *fakeLLM) Ping(_ context.Context) error { return nil }
func (f *fakeLLM) Close() error                 { return nil }

// fakeStore keeps briefs in memory in insertion order.
type fakeStore struct {
	briefs  []domain.Brief
	saveErr error
}

func (f *fakeStore) SaveBrief(_ context.Context, brief *domain.Brief) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.briefs = append([]domain.Brief{*brief}, f.briefs...)
	return nil
}

func (f *fakeStore) GetBrief(_ context.Context, id string) (*domain.Brief, error) {
	for i := range f.briefs {
		if f.briefs[i].ID == id {
			return &f.briefs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) ListBriefs(_ context.Context) ([]domain.Brief, error) {
	return f.briefs, nil
}

func (f *fakeStore) Close() error { return nil }

func writeTempDoc(t *testing.T, name, content string) *domain.FileRef {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return &domain.FileRef{ID: name, Filename: name, Path: path}
}

func TestGenerateRequiresLLM(t *testing.T) {
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	_, err := svc.Generate(context.Background(), domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestGenerateValidatesRequest(t *testing.T) {
	llm := &fakeLLM{response: "# Cover Page"}
	svc := NewBriefService(fakeReader{}, llm, nil, nil)

	_, err := svc.Generate(context.Background(), domain.BriefRequest{CompanyName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Generate(context.Background(), domain.BriefRequest{ContactName: "Jane Doe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, llm.calls)
}

func TestGenerateProducesAndPersistsBrief(t *testing.T) {
	llm := &fakeLLM{response: "# Cover Page\n---\n# Table of Contents"}
	store := &fakeStore{}
	svc := NewBriefService(fakeReader{}, llm, store, nil)

	req := domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme Retail",
		QPilotDoc:   writeTempDoc(t, "Acme Retail - Q-Pilot.txt", "Acme sells retail software."),
	}

	brief, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, brief)

	assert.NotEmpty(t, brief.ID)
	assert.Equal(t, "Jane Doe", brief.ContactName)
	assert.Equal(t, domain.DefaultStep, brief.Step)
	assert.Equal(t, llm.response, brief.Markdown)
	assert.Contains(t, brief.EventID, "evt-")
	assert.Equal(t, "acme-retail-q-pilot", brief.CompanyID)

	require.Len(t, store.briefs, 1)
	assert.Equal(t, brief.ID, store.briefs[0].ID)

	// System prompt carries the contact name and the default vendor.
	assert.Contains(t, llm.lastSystem, "Jane Doe")
	assert.Contains(t, llm.lastSystem, "Next Quarter")
}

func TestGenerateUsesProvidedIdentifiers(t *testing.T) {
	llm := &fakeLLM{response: "# Deck"}
	svc := NewBriefService(fakeReader{}, llm, nil, nil)

	brief, err := svc.Generate(context.Background(), domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
		EventID:     "evt-cafe1234",
		CompanyID:   "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-cafe1234", brief.EventID)
	assert.Equal(t, "acme", brief.CompanyID)
}

func TestGenerateSurvivesStoreFailure(t *testing.T) {
	llm := &fakeLLM{response: "# Deck"}
	store := &fakeStore{saveErr: errors.New("disk full")}
	svc := NewBriefService(fakeReader{}, llm, store, nil)

	brief, err := svc.Generate(context.Background(), domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "# Deck", brief.Markdown)
}

func TestAssemblePayloadRepairsAndReconstructs(t *testing.T) {
	research := "Michael\nStevens leads the data platform initiative.\n" +
		"Profile: https://www.linkedin\n.com/in/michael-stevens-8a46\nMore notes follow."
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	req := domain.BriefRequest{
		ContactName: "Michael Stevens",
		CompanyName: "Globex",
		ResearchDoc: writeTempDoc(t, "research.txt", research),
	}

	payload, err := svc.AssemblePayload(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, payload, "Michael Stevens leads the data platform initiative.")
	assert.Contains(t, payload, "LinkedIn: https://www.linkedin.com/in/michael-stevens-8a46 (ACTION REQUIRED: FETCH PROFILE)")
	assert.Contains(t, payload, "# INPUT: Research Document")
}

func TestAssemblePayloadPrefersExplicitLinkedInURL(t *testing.T) {
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	payload, err := svc.AssemblePayload(context.Background(), domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
		LinkedInURL: "https://www.linkedin.com/in/jane-doe",
	})
	require.NoError(t, err)
	assert.Contains(t, payload, "LinkedIn: https://www.linkedin.com/in/jane-doe (ACTION REQUIRED: FETCH PROFILE)")
}

func TestAssemblePayloadFiltersCaseStudiesByIndustry(t *testing.T) {
	csvText := "Industry,Challenge,Company,Solution,Reference\n" +
		"Retail/eCommerce,Cart abandonment,ShopCo,Checkout revamp,case-001\n" +
		"Financial Services,Patient intake,MedCo,Intake portal,case-002\n"
	research := "The retail market for e-commerce storefronts keeps growing. Retail margins are thin."

	svc := NewBriefService(fakeReader{}, nil, nil, nil)
	req := domain.BriefRequest{
		ContactName:         "Jane Doe",
		CompanyName:         "ShopCo",
		ResearchDoc:         writeTempDoc(t, "research.txt", research),
		SolvedChallengesDoc: writeTempDoc(t, "challenges.csv", csvText),
	}

	payload, err := svc.AssemblePayload(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, payload, "Relevant Solved Challenges (Inferred Industry: Retail/eCommerce)")
	assert.Contains(t, payload, "Cart abandonment")
	assert.NotContains(t, payload, "Patient intake")
}

func TestAssemblePayloadMissingDocument(t *testing.T) {
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	_, err := svc.AssemblePayload(context.Background(), domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
		ResearchDoc: &domain.FileRef{ID: "x", Filename: "missing.txt", Path: "/nonexistent/missing.txt"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssemblePayloadHonoursContextCancellation(t *testing.T) {
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AssemblePayload(ctx, domain.BriefRequest{
		ContactName: "Jane Doe",
		CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListAndGetRequireStore(t *testing.T) {
	svc := NewBriefService(fakeReader{}, nil, nil, nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.Get(context.Background(), "some-id")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestListAndGetDelegateToStore(t *testing.T) {
	store := &fakeStore{briefs: []domain.Brief{
		{ID: "b2", ContactName: "Jane Doe"},
		{ID: "b1", ContactName: "John Smith"},
	}}
	svc := NewBriefService(fakeReader{}, nil, store, nil)

	briefs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, briefs, 2)
	assert.Equal(t, "b2", briefs[0].ID)

	brief, err := svc.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", brief.ContactName)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
