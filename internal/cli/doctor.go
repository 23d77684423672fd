package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/skill-launcher/skill-launcher/internal/manifest"
	"github.com/skill-launcher/skill-launcher/internal/registry"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a plugins manifest at the given path instead of the default")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check skill directories and the plugins manifest",
	Long: `Report every skill directory in scan order, whether the installed-plugins
manifest matches its schema, and whether the usage history is readable.
A manifest that fails validation is ignored during scans, so every plugin
skill is then attributed as Local.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := newScanner(cmd)
		out := cmd.OutOrStdout()

		failures := checkSources(out, scanner.Sources())

		path := checkManifest
		if path == "" {
			var err error
			if path, err = userdata.GetPluginsManifestPath(provider); err != nil {
				fmt.Fprintf(out, "Plugins manifest:\n  [WARN] Could not resolve manifest path: %v\n", err)
			}
		}
		if path != "" {
			failures += checkPluginsManifest(out, path, checkManifest != "")
		}

		if usagePath, err := userdata.GetUsagePath(provider); err == nil {
			failures += checkUsageFile(out, usagePath)
		}

		if failures > 0 {
			return fmt.Errorf("doctor found %d problem(s)", failures)
		}
		return nil
	},
}

// checkSources prints one line per skill directory and returns the number
// of directories that exist but cannot be read.
func checkSources(w io.Writer, sources []registry.Source) int {
	fmt.Fprintln(w, "Skill directories (highest priority first):")
	if len(sources) == 0 {
		fmt.Fprintln(w, "  [WARN] No skill directories could be determined")
		return 0
	}

	failures := 0
	for _, src := range sources {
		info, err := os.Stat(src.BasePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(w, "  [MISS] %s: %s\n", src.Name, src.BasePath)
			continue
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", src.Name, err)
			failures++
			continue
		case !info.IsDir():
			fmt.Fprintf(w, "  [WARN] %s: %s is not a directory\n", src.Name, src.BasePath)
			continue
		}

		entries, err := os.ReadDir(src.BasePath)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", src.Name, err)
			failures++
			continue
		}
		count := 0
		for _, e := range entries {
			if _, err := os.Stat(filepath.Join(src.BasePath, e.Name(), userdata.SkillFile)); err == nil {
				count++
			}
		}
		fmt.Fprintf(w, "  [ OK ] %s: %s (%d skills)\n", src.Name, src.BasePath, count)
	}
	return failures
}

// checkPluginsManifest validates the manifest against its schema. A missing
// default manifest is not a problem; a missing explicit one is.
func checkPluginsManifest(w io.Writer, path string, explicit bool) int {
	fmt.Fprintf(w, "Plugins manifest: %s\n", path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		fmt.Fprintln(w, "  [MISS] No plugins installed; plugin skills will show as Local")
		return 0
	}

	report, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	if !report.OK() {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(report.Problems))
		for _, p := range report.Problems {
			fmt.Fprintf(w, "    - %s\n", p)
		}
		return 1
	}

	idx := manifest.Load(path, nil)
	fmt.Fprintf(w, "  [ OK ] Valid manifest (%d plugin entries)\n", idx.Len())
	return 0
}

func checkUsageFile(w io.Writer, path string) int {
	fmt.Fprintf(w, "Usage history: %s\n", path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(w, "  [MISS] No launches recorded yet")
		return 0
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}

	var u userdata.UsageData
	if err := json.Unmarshal(data, &u); err != nil {
		fmt.Fprintf(w, "  [FAIL] Unreadable usage file, history will be ignored: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %d skills recorded\n", len(u.Usage))
	return 0
}
