package cli

import (
	"fmt"
	"strings"

	"github.com/skill-launcher/skill-launcher/internal/query"
	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [input...]",
	Short: "Find skills by name",
	Long: `Find skills the way the launcher input box does. Plain text matches skill
names and display names (case-insensitive substring; descriptions are not
searched). Input starting with "/" matches skill names by prefix.

Results are ordered by launch history, most used first.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")

	skills, err := newScanner(cmd).Scan()
	if err != nil {
		return fmt.Errorf("scanning skills: %w", err)
	}
	usage, _ := loadUsage()
	matches := query.Filter(query.SortByUsage(skills, usage), query.Parse(raw))

	if searchJSON {
		return printJSON(cmd, matches)
	}
	if len(matches) == 0 {
		msg := "No skills found"
		if raw != "" {
			msg += fmt.Sprintf(" matching %q", raw)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}
	return printSkillTable(cmd, matches)
}
