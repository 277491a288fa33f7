package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultsWhenNoConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	defer SetConfigDirOverride("")

	cfg, path, err := Resolve(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want defaults", path)
	}
	if !reflect.DeepEqual(*cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults", *cfg)
	}
}

func TestLoadCUEConfigFile(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "custom.cue")
	content := `
scripts_dir: "./scripts"
targets: ["python", "go"]
scaffold_module: "gen"
`
	if err := os.WriteFile(cuePath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Resolve(context.Background(), LoadOptions{ConfigFilePath: cuePath})
	if err != nil {
		t.Fatal(err)
	}
	if path != cuePath {
		t.Errorf("resolved path = %q, want %q", path, cuePath)
	}
	if cfg.ScriptsDir != "./scripts" {
		t.Errorf("ScriptsDir = %q", cfg.ScriptsDir)
	}
	if !reflect.DeepEqual(cfg.Targets, []string{"python", "go"}) {
		t.Errorf("Targets = %v", cfg.Targets)
	}
	if cfg.ScaffoldModule != "gen" {
		t.Errorf("ScaffoldModule = %q", cfg.ScaffoldModule)
	}
	// Untouched keys keep their defaults.
	if cfg.SharedDir != DefaultConfig().SharedDir {
		t.Errorf("SharedDir = %q, want default", cfg.SharedDir)
	}
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "bad.cue")
	if err := os.WriteFile(cuePath, []byte(`scripts_dir: 42`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Resolve(context.Background(), LoadOptions{ConfigFilePath: cuePath})
	if err == nil {
		t.Fatal("expected a schema violation error")
	}
	if !strings.Contains(err.Error(), "bad.cue") {
		t.Errorf("error does not name the offending file: %v", err)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, _, err := Resolve(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoadRejectsEmptyTargets(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "empty.cue")
	if err := os.WriteFile(cuePath, []byte(`targets: []`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Resolve(context.Background(), LoadOptions{ConfigFilePath: cuePath})
	if err == nil {
		t.Fatal("expected an error for an empty target enumeration")
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScriptsDir = "scripts"
	cfg.OutputDir = "out"

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"shared lib", cfg.SharedLibDir(), filepath.Join("scripts", "shared", "lib")},
		{"shared flat", cfg.SharedFlatDir(), filepath.Join("scripts", "shared")},
		{"target lib", cfg.TargetLibDir("python"), filepath.Join("scripts", "python", "lib")},
		{"entry", cfg.EntryPath("python"), filepath.Join("scripts", "python", "setup.nu")},
		{"templates", cfg.TemplatesPath("python"), filepath.Join("scripts", "python", "templates")},
		{"output", cfg.OutputPath("python"), filepath.Join("out", "python-setup.nu")},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestIsTarget(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.IsTarget("python") {
		t.Error("python should be a default target")
	}
	if cfg.IsTarget("ruby") {
		t.Error("ruby should not be a default target")
	}
}
