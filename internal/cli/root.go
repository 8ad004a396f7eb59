package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tsmm-dev/tsmm/internal/branding"
	"github.com/tsmm-dev/tsmm/internal/config"
	"github.com/tsmm-dev/tsmm/internal/fetch"
	"github.com/tsmm-dev/tsmm/internal/manifest"
	"github.com/tsmm-dev/tsmm/internal/prompt"
	"github.com/tsmm-dev/tsmm/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errNoCommand is returned when tsmm is run without a command.
var errNoCommand = errors.New("must provide a valid command")

// newFetcher builds the clone implementation. Tests replace it.
var newFetcher = func(binary string, progress io.Writer) fetch.Fetcher {
	return fetch.NewGitFetcher(binary, progress)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <command> [options]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs source modules from git repositories into a project.
Installed modules are recorded in ` + branding.ManifestFile() + ` in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errNoCommand
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute runs the root command with build info injected via ldflags and
// prints any error to stderr. The returned error is only used for the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stderr := rootCmd.ErrOrStderr()
		printError(stderr, newLogger(config.LogLevel(), stderr), err)
	}
	return err
}

// openRegistry loads user settings and the project manifest, prompting for a
// source directory on first use.
func openRegistry(cmd *cobra.Command) (*registry.Registry, error) {
	config.Load()
	logger := newLogger(config.LogLevel(), cmd.ErrOrStderr())

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	manifestPath := filepath.Join(wd, branding.ManifestFile())

	out := cmd.OutOrStdout()
	if !manifest.Exists(manifestPath) {
		st := newStyles(out)
		fmt.Fprintln(out, st.err.Render("Error: no config file found"))
	}

	return registry.Open(manifestPath,
		prompt.New(cmd.InOrStdin(), out),
		registry.WithWorkDir(wd),
		registry.WithDefaultSource(config.DefaultSource()),
		registry.WithFetcher(newFetcher(config.GitBinary(), out)),
		registry.WithReporter(newStyledReporter(out)),
		registry.WithLogger(logger),
	)
}
