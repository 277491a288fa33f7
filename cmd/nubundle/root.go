// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"nubundle/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// logger receives pipeline diagnostics; level follows --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "nubundle",
		Short: "Bundle multi-file Nushell setup scripts into one executable",
		Long: TitleStyle.Render("nubundle") + SubtitleStyle.Render(" - single-file bundler for Nushell script trees") + `

nubundle turns a multi-file Nushell program - an entry script plus a
library of importable modules, some shared across target variants - into
a single self-contained, executable artifact. Template assets are embedded
as string constants so the artifact needs no companion files at runtime.

` + SubtitleStyle.Render("Expected script tree:") + `
  shared/lib/*.nu           shared module library
  shared/common.nu          module inlined at top level
  <target>/setup.nu         entry script per target
  <target>/lib/*.nu         target module library
  <target>/templates/*      optional template assets

` + SubtitleStyle.Render("Examples:") + `
  nubundle bundle python        Bundle the python target
  nubundle bundle node --yes    Bundle without the advisory note
  nubundle targets              List configured targets
  nubundle config show          Show current configuration`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nubundle/config.cue)")

	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// loadConfig resolves the effective configuration for a command invocation.
func loadConfig(ctx context.Context) (*config.Config, string, error) {
	return config.Resolve(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
