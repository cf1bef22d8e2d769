// Command briefly generates executive meeting briefs from sales documents.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/briefly-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/briefly-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/briefly-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/briefly-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/briefly-cli/internal/core/domain"
	"github.com/custodia-labs/briefly-cli/internal/core/ports/driven"
	"github.com/custodia-labs/briefly-cli/internal/core/services"
	"github.com/custodia-labs/briefly-cli/internal/logger"
	"github.com/custodia-labs/briefly-cli/internal/readers"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialise config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("initialise prompt store: %w", err)
	}

	briefStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialise brief store: %w", err)
	}
	defer briefStore.Close()

	// The LLM is optional at startup. Commands that need it fail with
	// a pointer to 'briefly settings llm' instead of blocking commands
	// that do not.
	settings := llmSettings(configStore)
	llm, err := ai.CreateAndValidateLLMService(&settings)
	if err != nil {
		logger.Warn("LLM unavailable: %v", err)
		llm = nil
	}
	if llm != nil {
		defer llm.Close()
	}

	briefService := services.NewBriefService(readers.New(), llm, briefStore, promptStore)

	cli.SetVersion(version)
	cli.SetBriefService(briefService)
	cli.SetConfigStore(configStore)

	return cli.Execute()
}

func llmSettings(store driven.ConfigStore) domain.LLMSettings {
	return domain.LLMSettings{
		Provider: domain.AIProvider(store.GetString(driven.ConfigLLMProvider)),
		Model:    store.GetString(driven.ConfigLLMModel),
		BaseURL:  store.GetString(driven.ConfigLLMBaseURL),
		APIKey:   store.GetString(driven.ConfigLLMAPIKey),
	}
}
