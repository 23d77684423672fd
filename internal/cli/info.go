package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/skill-launcher/skill-launcher/internal/frontmatter"
	"github.com/skill-launcher/skill-launcher/internal/manifest"
	"github.com/skill-launcher/skill-launcher/internal/provenance"
	"github.com/skill-launcher/skill-launcher/internal/registry"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
	"github.com/spf13/cobra"
)

var infoJSON bool

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details for one skill",
	Long: `Show a skill's record, its SKILL.md front matter, its launch history, and
the installed-plugins manifest entries that could attribute it. Every alias
tried during attribution is listed with the install records found under it,
newest version first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimPrefix(args[0], "/")
		scanner := newScanner(cmd)

		skills, err := scanner.Scan()
		if err != nil {
			return fmt.Errorf("scanning skills: %w", err)
		}
		i := slices.IndexFunc(skills, func(s registry.Skill) bool { return s.Name == name })
		if i < 0 {
			return fmt.Errorf("skill %q not found", name)
		}

		usage, _ := loadUsage()
		detail := skillDetail{
			Skill:   skills[i],
			Header:  readHeader(skills[i].Location),
			Matches: manifestMatches(name, scanner.LoadIndex()),
		}
		if rec, ok := usage.Lookup(name); ok {
			detail.Launches = rec.Count
			detail.LastUsed = rec.LastUsed
		}

		if infoJSON {
			return printJSON(cmd, detail)
		}
		return printSkillDetail(cmd, detail)
	},
}

type skillDetail struct {
	registry.Skill
	Header   []headerField `json:"front_matter"`
	Launches int           `json:"launches"`
	LastUsed int64         `json:"last_used,omitempty"` // Unix milliseconds
	Matches  []aliasMatch  `json:"manifest_matches"`
}

type headerField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type aliasMatch struct {
	Alias   string                   `json:"alias"`
	Key     string                   `json:"key"`
	Source  string                   `json:"source"`
	Label   string                   `json:"label"`
	Latest  string                   `json:"latest,omitempty"`
	Records []manifest.InstallRecord `json:"records"`
}

// readHeader returns the front matter of the skill's SKILL.md in file order.
func readHeader(dir string) []headerField {
	data, err := os.ReadFile(filepath.Join(dir, userdata.SkillFile))
	if err != nil {
		return []headerField{}
	}
	block, _ := frontmatter.Parse(string(data))

	fields := make([]headerField, 0, block.Len())
	for _, k := range block.Keys() {
		v, _ := block.Get(k)
		fields = append(fields, headerField{Key: k, Value: v})
	}
	return fields
}

// manifestMatches lists the attributable manifest entries reachable from
// name's aliases, in alias order. Repeated aliases are reported once.
func manifestMatches(name string, idx *manifest.Index) []aliasMatch {
	matches := []aliasMatch{}
	seen := map[string]bool{}
	for _, alias := range provenance.Aliases(name) {
		if seen[alias] {
			continue
		}
		seen[alias] = true

		entries := idx.Lookup(alias)
		slices.SortFunc(entries, func(a, b manifest.Entry) int { return strings.Compare(a.Key, b.Key) })
		for _, e := range entries {
			m := aliasMatch{
				Alias:   alias,
				Key:     e.Key,
				Source:  e.Source,
				Label:   provenance.SourceLabel(e.Source),
				Records: manifest.SortByVersion(e.Records),
			}
			if latest, ok := manifest.Latest(e.Records); ok {
				m.Latest = latest.Version
			}
			matches = append(matches, m)
		}
	}
	return matches
}

func printSkillDetail(cmd *cobra.Command, d skillDetail) error {
	provLine := d.Provenance + " (" + d.Attribution
	if d.PluginKey != "" {
		provLine += " via " + d.PluginKey
	}
	provLine += ")"

	lastUsed := "never"
	if d.LastUsed > 0 {
		lastUsed = time.UnixMilli(d.LastUsed).Local().Format(time.DateTime)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", d.Name)
	fmt.Fprintf(w, "Display name:\t%s\n", d.DisplayName)
	fmt.Fprintf(w, "Description:\t%s\n", d.Description)
	fmt.Fprintf(w, "Category:\t%s\n", d.Category)
	fmt.Fprintf(w, "Provenance:\t%s\n", provLine)
	fmt.Fprintf(w, "Scope:\t%s\n", d.Scope)
	fmt.Fprintf(w, "Path:\t%s\n", d.Location)
	fmt.Fprintf(w, "Command:\t%s\n", d.Invocation)
	fmt.Fprintf(w, "Launches:\t%d (last: %s)\n", d.Launches, lastUsed)
	if err := w.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(d.Header) > 0 {
		fmt.Fprintln(out, "\nFront matter:")
		for _, f := range d.Header {
			fmt.Fprintf(out, "  %s: %s\n", f.Key, f.Value)
		}
	}

	if len(d.Matches) == 0 {
		fmt.Fprintln(out, "\nNo installed-plugin entries match this skill.")
		return nil
	}

	fmt.Fprintln(out, "\nInstalled-plugin entries:")
	for _, m := range d.Matches {
		fmt.Fprintf(out, "  %s (alias %q, %s", m.Key, m.Alias, m.Label)
		if m.Latest != "" {
			fmt.Fprintf(out, ", latest %s", m.Latest)
		}
		fmt.Fprintln(out, ")")
		for _, r := range m.Records {
			version := r.Version
			if version == "" {
				version = "unknown"
			}
			fmt.Fprintf(out, "    %-12s %-8s %s\n", version, r.Scope, r.InstallPath)
		}
	}
	return nil
}
