package cli

import (
	"fmt"

	"github.com/skill-launcher/skill-launcher/internal/query"
	"github.com/spf13/cobra"
)

var (
	listJSON    bool
	listByUsage bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available skills",
	Long: `List every skill visible from the current project. Project-level skill
directories (skills/, .codex/skills/, .claude/skills/) take priority over
~/.claude/skills/; a name found in a higher-priority directory hides the same
name further down.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listByUsage, "by-usage", false, "Order by launch history instead of directory priority")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	skills, err := newScanner(cmd).Scan()
	if err != nil {
		return fmt.Errorf("scanning skills: %w", err)
	}

	if listByUsage {
		usage, _ := loadUsage()
		skills = query.SortByUsage(skills, usage)
	}

	if listJSON {
		return printJSON(cmd, skills)
	}
	if len(skills) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skills found.")
		return nil
	}
	return printSkillTable(cmd, skills)
}
