// Package cli provides the command-line interface for briefly.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driving"
	"github.com/custodia-labs/briefly-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute. Commands must check for
// nil and fail with a clear message rather than panic.
var (
	briefService driving.BriefService
	configStore  driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "briefly",
	Short: "Generate executive meeting briefs from sales documents",
	Long: `briefly assembles research, playbook and solved-challenges documents
into a single payload, recovers contact details mangled by PDF extraction,
and drives an LLM to produce a presentation-ready meeting brief deck.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBriefService injects the brief service used by generate and briefs commands.
func SetBriefService(svc driving.BriefService) {
	briefService = svc
}

// SetConfigStore injects the config store used by settings commands.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}
