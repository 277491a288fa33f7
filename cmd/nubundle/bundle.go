// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nubundle/internal/bundler"
	"nubundle/internal/issue"
)

var (
	// bundleYes acknowledges the build up front. The flag is advisory: its
	// absence only prints an informational note, the build runs identically.
	bundleYes bool
	// bundleScriptsDir overrides the configured scripts root
	bundleScriptsDir string
	// bundleOutputDir overrides the configured output directory
	bundleOutputDir string
)

// bundleCmd bundles one target variant into a single executable artifact
var bundleCmd = &cobra.Command{
	Use:   "bundle <target>",
	Short: "Bundle a target's script tree into one executable artifact",
	Long: `Bundle the selected target's entry script and every module it
transitively imports into a single self-contained artifact.

Modules are located in a fixed probe order - shared library, shared flat
location, target library - so a shared copy always wins over a target copy
of the same name. Imports found in none of the three locations are assumed
to be built-in or externally supplied and are excluded with a warning.
Template assets under the target's template directory are embedded as
string constants.

The freshly written artifact is smoke-tested with ` + CmdStyle.Render("--help") + `; a non-zero
exit fails the invocation but leaves the artifact on disk for inspection.

Examples:
  nubundle bundle python
  nubundle bundle node --yes
  nubundle bundle jvm --scripts-dir ./scripts --output-dir ./dist`,
	Args: cobra.ExactArgs(1),
	RunE: runBundle,
}

func init() {
	bundleCmd.Flags().BoolVarP(&bundleYes, "yes", "y", false, "acknowledge the build (advisory; the build proceeds either way)")
	bundleCmd.Flags().StringVar(&bundleScriptsDir, "scripts-dir", "", "scripts root (default: configured scripts_dir)")
	bundleCmd.Flags().StringVar(&bundleOutputDir, "output-dir", "", "artifact output directory (default: configured output_dir)")
}

func runBundle(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx := cmd.Context()

	cfg, _, err := loadConfig(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 1, Err: err}
	}
	if bundleScriptsDir != "" {
		cfg.ScriptsDir = bundleScriptsDir
	}
	if bundleOutputDir != "" {
		cfg.OutputDir = bundleOutputDir
	}

	if !bundleYes {
		fmt.Println(SubtitleStyle.Render("note: proceeding without --yes; the flag is informational and does not gate the build"))
	}

	report, err := bundler.Run(ctx, bundler.Options{
		Target: target,
		Config: *cfg,
		Logger: logger,
	})
	if err != nil {
		var berr *bundler.Error
		if errors.As(err, &berr) {
			if card := issue.Get(berr.IssueID); card != nil {
				rendered, _ := card.Render("dark")
				fmt.Fprint(os.Stderr, rendered)
			}
		}
		if report != nil && report.Validation.Stderr != "" {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("artifact diagnostics:"))
			fmt.Fprint(os.Stderr, report.Validation.Stderr)
		}
		var actionable *issue.ActionableError
		if errors.As(err, &actionable) {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(actionable.Format()))
		}
		return &ExitError{Code: 1, Err: err}
	}

	printBundleReport(report)
	return nil
}

func printBundleReport(report *bundler.Report) {
	fmt.Printf("%s %s (%d bytes)\n",
		SuccessStyle.Render("✓ bundled"),
		CmdStyle.Render(report.ArtifactPath),
		report.Size)

	fmt.Printf("  shared modules: %d, target modules: %d, templates: %d\n",
		len(report.SharedModules), len(report.TargetModules), len(report.Templates))

	if report.InlinedModule != "" {
		fmt.Printf("  inlined at top level: %s\n", CmdStyle.Render(report.InlinedModule))
	}
	if len(report.Unresolved) > 0 {
		fmt.Println(WarningStyle.Render(fmt.Sprintf("  %d import(s) not found locally and excluded; run with --verbose for names", len(report.Unresolved))))
	}
}
