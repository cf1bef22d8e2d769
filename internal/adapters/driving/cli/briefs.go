package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var briefsJSON bool

var briefsCmd = &cobra.Command{
	Use:   "briefs",
	Short: "Manage generated briefs",
	Long:  `List and inspect previously generated meeting briefs.`,
	RunE:  runBriefsList,
}

var briefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated briefs",
	RunE:  runBriefsList,
}

var briefsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a generated brief",
	Args:  cobra.ExactArgs(1),
	RunE:  runBriefsShow,
}

func init() {
	briefsCmd.PersistentFlags().BoolVar(&briefsJSON, "json", false, "output as JSON")
	briefsCmd.AddCommand(briefsListCmd)
	briefsCmd.AddCommand(briefsShowCmd)
	rootCmd.AddCommand(briefsCmd)
}

func runBriefsList(cmd *cobra.Command, _ []string) error {
	if briefService == nil {
		return errors.New("brief service not configured")
	}

	briefs, err := briefService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list briefs: %w", err)
	}

	if briefsJSON {
		data, err := json.MarshalIndent(briefs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal briefs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(briefs) == 0 {
		cmd.Println("No briefs generated yet.")
		return nil
	}

	cmd.Println("Briefs:")
	cmd.Println()
	for i := range briefs {
		cmd.Printf("  %s  %s @ %s (%s)\n",
			briefs[i].CreatedAt.Format("2006-01-02 15:04"),
			briefs[i].ContactName, briefs[i].CompanyID, briefs[i].ID)
	}
	return nil
}

func runBriefsShow(cmd *cobra.Command, args []string) error {
	if briefService == nil {
		return errors.New("brief service not configured")
	}

	brief, err := briefService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get brief: %w", err)
	}

	if briefsJSON {
		data, err := json.MarshalIndent(brief, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal brief: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(brief.Markdown)
	return nil
}
