package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

var (
	genContactName   string
	genTitle         string
	genCompanyName   string
	genEmail         string
	genLinkedInURL   string
	genMeetingAgenda string
	genAEGoal        string
	genRegionCity    string
	genGTMVendor     string
	genDays          int
	genQPilotPath    string
	genResearchPath  string
	genPlaybookPath  string
	genChallengesCSV string
	genEventID       string
	genCompanyID     string
	genJSON          bool
	genPayloadOnly   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a meeting brief",
	Long: `Assembles the supplied documents into a generation payload and produces
a meeting brief deck via the configured LLM provider.

Contact names split across lines by PDF extraction are repaired, a LinkedIn
profile URL is reconstructed from the research text when not supplied, and
solved challenges are filtered to the industry inferred from the documents.`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&genContactName, "contact-name", "", "contact full name (required)")
	flags.StringVar(&genTitle, "title", "", "contact job title")
	flags.StringVar(&genCompanyName, "company-name", "", "target company name (required)")
	flags.StringVar(&genEmail, "email", "", "contact email address")
	flags.StringVar(&genLinkedInURL, "linkedin-url", "", "contact LinkedIn profile URL")
	flags.StringVar(&genMeetingAgenda, "meeting-agenda", "", "meeting agenda")
	flags.StringVar(&genAEGoal, "ae-goal", "", "account executive's goal for the meeting")
	flags.StringVar(&genRegionCity, "region-city", "", "contact region or city")
	flags.StringVar(&genGTMVendor, "gtm-vendor", "", "GTM vendor name")
	flags.IntVar(&genDays, "days", 0, "recency window in days for research relevance")
	flags.StringVar(&genQPilotPath, "qpilot", "", "path to the Q-Pilot document")
	flags.StringVar(&genResearchPath, "research-doc", "", "path to the research document")
	flags.StringVar(&genPlaybookPath, "playbook-doc", "", "path to the playbook document")
	flags.StringVar(&genChallengesCSV, "solved-challenges-doc", "", "path to the solved challenges CSV")
	flags.StringVar(&genEventID, "event-id", "", "event identifier (generated if omitted)")
	flags.StringVar(&genCompanyID, "company-id", "", "company identifier (inferred if omitted)")
	flags.BoolVar(&genJSON, "json", false, "output the brief as JSON")
	flags.BoolVar(&genPayloadOnly, "payload-only", false, "print the assembled payload without calling the LLM")

	_ = generateCmd.MarkFlagRequired("contact-name")
	_ = generateCmd.MarkFlagRequired("company-name")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if briefService == nil {
		return errors.New("brief service not configured")
	}

	req := domain.BriefRequest{
		ContactName:   genContactName,
		Title:         genTitle,
		CompanyName:   genCompanyName,
		Email:         genEmail,
		LinkedInURL:   genLinkedInURL,
		MeetingAgenda: genMeetingAgenda,
		AEGoal:        genAEGoal,
		RegionCity:    genRegionCity,
		GTMVendor:     genGTMVendor,
		Days:          genDays,
		EventID:       genEventID,
		CompanyID:     genCompanyID,
	}

	var err error
	if req.QPilotDoc, err = fileRef(genQPilotPath); err != nil {
		return err
	}
	if req.ResearchDoc, err = fileRef(genResearchPath); err != nil {
		return err
	}
	if req.PlaybookDoc, err = fileRef(genPlaybookPath); err != nil {
		return err
	}
	if req.SolvedChallengesDoc, err = fileRef(genChallengesCSV); err != nil {
		return err
	}

	ctx := cmd.Context()

	if genPayloadOnly {
		payload, err := briefService.AssemblePayload(ctx, req)
		if err != nil {
			return fmt.Errorf("assemble payload: %w", err)
		}
		cmd.Println(payload)
		return nil
	}

	brief, err := briefService.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generate brief: %w", err)
	}

	if genJSON {
		data, err := json.MarshalIndent(brief, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal brief: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(brief.Markdown)
	cmd.PrintErrf("\nBrief %s saved (event %s, company %s)\n", brief.ID, brief.EventID, brief.CompanyID)
	return nil
}

// fileRef builds a FileRef for a document path, or nil when the flag
// was not given.
func fileRef(path string) (*domain.FileRef, error) {
	if path == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &domain.FileRef{
		ID:       uuid.New().String(),
		Filename: filepath.Base(abs),
		Path:     abs,
	}, nil
}
