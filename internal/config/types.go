// SPDX-License-Identifier: MPL-2.0

package config

import (
	"path/filepath"
	"slices"
)

// Config is the effective bundler configuration. Every path the pipeline
// touches is derived from here and threaded explicitly into the stages;
// nothing reads ambient execution context.
type Config struct {
	// ScriptsDir is the root of the script tree the bundler consumes.
	ScriptsDir string `mapstructure:"scripts_dir"`

	// OutputDir is where artifacts are written.
	OutputDir string `mapstructure:"output_dir"`

	// Targets is the fixed enumeration of bundleable target variants.
	Targets []string `mapstructure:"targets"`

	// SharedDir is the shared root directory name under ScriptsDir. Shared
	// modules live in "<SharedDir>/lib"; the flat "<SharedDir>" location
	// holds the inline-at-top-level module.
	SharedDir string `mapstructure:"shared_dir"`

	// TemplatesDir is the per-target template directory name.
	TemplatesDir string `mapstructure:"templates_dir"`

	// EntryScript is the entry script file name inside each target directory.
	EntryScript string `mapstructure:"entry_script"`

	// InlineModule names the shared module emitted unwrapped at top level so
	// its definitions are directly visible to the entry script.
	InlineModule string `mapstructure:"inline_module"`

	// ScaffoldModule names the one module subject to the template-loading
	// rewrite.
	ScaffoldModule string `mapstructure:"scaffold_module"`

	// Interpreter is the executable header line written to artifacts.
	Interpreter string `mapstructure:"interpreter"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ScriptsDir:     ".",
		OutputDir:      "dist",
		Targets:        []string{"python", "node", "jvm"},
		SharedDir:      "shared",
		TemplatesDir:   "templates",
		EntryScript:    "setup.nu",
		InlineModule:   "common",
		ScaffoldModule: "scaffold",
		Interpreter:    "#!/usr/bin/env nu",
	}
}

// IsTarget reports whether name is in the configured target enumeration.
func (c Config) IsTarget(name string) bool {
	return slices.Contains(c.Targets, name)
}

// SharedLibDir returns the conventional shared module directory.
func (c Config) SharedLibDir() string {
	return filepath.Join(c.ScriptsDir, c.SharedDir, "lib")
}

// SharedFlatDir returns the flat shared location.
func (c Config) SharedFlatDir() string {
	return filepath.Join(c.ScriptsDir, c.SharedDir)
}

// TargetDir returns a target's directory.
func (c Config) TargetDir(target string) string {
	return filepath.Join(c.ScriptsDir, target)
}

// TargetLibDir returns a target's module directory.
func (c Config) TargetLibDir(target string) string {
	return filepath.Join(c.ScriptsDir, target, "lib")
}

// EntryPath returns a target's entry script path.
func (c Config) EntryPath(target string) string {
	return filepath.Join(c.ScriptsDir, target, c.EntryScript)
}

// TemplatesPath returns a target's template asset directory.
func (c Config) TemplatesPath(target string) string {
	return filepath.Join(c.ScriptsDir, target, c.TemplatesDir)
}

// OutputPath returns the fixed artifact path for a target.
func (c Config) OutputPath(target string) string {
	return filepath.Join(c.OutputDir, target+"-setup.nu")
}
