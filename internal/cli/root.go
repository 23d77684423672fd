package cli

import (
	"log/slog"
	"time"

	"github.com/skill-launcher/skill-launcher/internal/branding"
	"github.com/skill-launcher/skill-launcher/internal/config"
	"github.com/skill-launcher/skill-launcher/internal/registry"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose         bool
	projectRootFlag string
)

// provider and now are replaced in tests.
var (
	provider userdata.Provider = userdata.OS{}
	now                        = time.Now
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` lists the Claude skills visible from the current project, shows where
each one came from (bundled, an installed plugin source, or local), and
prints the slash command to launch one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped entries and manifest fallbacks to stderr")
	rootCmd.PersistentFlags().StringVar(&projectRootFlag, "project-root", "", "Project directory to scan (overrides config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// newLogger returns a debug logger on stderr when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newScanner builds a Scanner from the config file, the environment, and
// the --project-root flag.
func newScanner(cmd *cobra.Command) *registry.Scanner {
	cfg := config.Load(provider)

	root := cfg.ProjectRoot()
	if projectRootFlag != "" {
		root = projectRootFlag
	}

	s := registry.NewScanner()
	s.Provider = provider
	s.ProjectRoot = root
	s.Exclude = cfg.Exclude()
	s.Logger = newLogger(cmd)
	return s
}

// loadUsage returns the usage data and the file it came from.
func loadUsage() (*userdata.UsageData, string) {
	path, err := userdata.GetUsagePath(provider)
	if err != nil {
		return &userdata.UsageData{}, ""
	}
	return userdata.LoadUsage(path), path
}
