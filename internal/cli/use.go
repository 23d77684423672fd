package cli

import (
	"fmt"
	"strings"

	"github.com/skill-launcher/skill-launcher/internal/query"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
	"github.com/spf13/cobra"
)

var useNoRecord bool

var useCmd = &cobra.Command{
	Use:   "use <input...>",
	Short: "Print the slash command for the best matching skill",
	Long: `Resolve launcher input to a single skill and print the slash command to send
to Claude, e.g. "/commit" or "/commit fix the flaky test". The first match in
launch-history order wins. The launch is recorded so frequently used skills
sort first next time.`,
	Example: `  skill-launcher use /commit
  skill-launcher use /commit fix the flaky test
  skill-launcher use docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUse,
}

func init() {
	useCmd.Flags().BoolVar(&useNoRecord, "no-record", false, "Do not update launch history")
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	raw := strings.Join(args, " ")

	skills, err := newScanner(cmd).Scan()
	if err != nil {
		return fmt.Errorf("scanning skills: %w", err)
	}
	usage, usagePath := loadUsage()

	in := query.Parse(raw)
	matches := query.Filter(query.SortByUsage(skills, usage), in)
	if len(matches) == 0 {
		return fmt.Errorf("no skill matches %q", raw)
	}
	skill := matches[0]

	fmt.Fprintln(cmd.OutOrStdout(), query.Command(skill, in))

	if useNoRecord || usagePath == "" {
		return nil
	}
	usage.Record(strings.TrimPrefix(skill.Name, "/"), now())
	if err := userdata.SaveUsage(usagePath, usage); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not record usage: %v\n", err)
	}
	return nil
}
