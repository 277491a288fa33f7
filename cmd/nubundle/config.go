// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd groups configuration inspection commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect bundler configuration",
}

// configShowCmd renders the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

// configPathCmd prints which config file is in effect
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 1, Err: err}
	}

	source := "built-in defaults"
	if path != "" {
		source = path
	}
	fmt.Println(TitleStyle.Render("Configuration") + SubtitleStyle.Render(" ("+source+")"))

	fmt.Printf("  %-16s %s\n", "scripts_dir", cfg.ScriptsDir)
	fmt.Printf("  %-16s %s\n", "output_dir", cfg.OutputDir)
	fmt.Printf("  %-16s %s\n", "targets", strings.Join(cfg.Targets, ", "))
	fmt.Printf("  %-16s %s\n", "shared_dir", cfg.SharedDir)
	fmt.Printf("  %-16s %s\n", "templates_dir", cfg.TemplatesDir)
	fmt.Printf("  %-16s %s\n", "entry_script", cfg.EntryScript)
	fmt.Printf("  %-16s %s\n", "inline_module", cfg.InlineModule)
	fmt.Printf("  %-16s %s\n", "scaffold_module", cfg.ScaffoldModule)
	fmt.Printf("  %-16s %s\n", "interpreter", cfg.Interpreter)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	_, path, err := loadConfig(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		return &ExitError{Code: 1, Err: err}
	}
	if path == "" {
		fmt.Println(SubtitleStyle.Render("no config file found; using built-in defaults"))
		return nil
	}
	fmt.Println(path)
	return nil
}
