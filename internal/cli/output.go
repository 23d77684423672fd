package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/skill-launcher/skill-launcher/internal/registry"
	"github.com/spf13/cobra"
)

const descriptionWidth = 60

func printSkillTable(cmd *cobra.Command, skills []registry.Skill) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROVENANCE\tSCOPE\tDESCRIPTION")
	for _, s := range skills {
		desc := s.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Provenance, s.Scope, truncate(desc, descriptionWidth))
	}
	return w.Flush()
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// truncate shortens s to at most n characters, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
