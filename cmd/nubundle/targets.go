// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// targetsCmd lists the configured target enumeration
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List configured targets and their expected paths",
	Long: `List every target in the configured enumeration together with the
paths the bundler will consume for it, and whether each exists on disk.

Examples:
  nubundle targets
  nubundle --config ./nubundle.cue targets`,
	RunE: runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(TitleStyle.Render("Configured targets"))
	for _, target := range cfg.Targets {
		fmt.Printf("\n%s\n", TitleStyle.Render(target))
		printPath("entry script", cfg.EntryPath(target))
		printPath("module library", cfg.TargetLibDir(target))
		printPath("templates", cfg.TemplatesPath(target))
		fmt.Printf("  %-16s %s\n", "artifact", CmdStyle.Render(cfg.OutputPath(target)))
	}

	fmt.Printf("\n%s\n", SubtitleStyle.Render("Shared roots"))
	printPath("shared library", cfg.SharedLibDir())
	printPath("flat location", cfg.SharedFlatDir())

	return nil
}

func printPath(label, path string) {
	marker := SuccessStyle.Render("✓")
	if _, err := os.Stat(path); err != nil {
		marker = WarningStyle.Render("✗")
	}
	fmt.Printf("  %-16s %s %s\n", label, CmdStyle.Render(path), marker)
}
