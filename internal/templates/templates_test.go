package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConstName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"settings.xml.template", "SETTINGS_XML_TEMPLATE"},
		{"widget.cfg.template", "WIDGET_CFG_TEMPLATE"},
		{"env.template", "ENV_TEMPLATE"},
		{"pre-commit.sh.template", "PRE_COMMIT_SH_TEMPLATE"},
	}

	for _, tt := range tests {
		if got := ConstName(tt.fileName); got != tt.want {
			t.Errorf("ConstName(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestEscapeOrder(t *testing.T) {
	// Backslashes first, then quotes; the reverse would double-escape the
	// inserted escapes.
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`a\b`, `a\\b`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash "quoted"`, `back\\slash \"quoted\"`},
		{`\"already escaped\"`, `\\\"already escaped\\\"`},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// unescape evaluates the string-literal escaping, for round-trip checks.
func unescape(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"line1\nline2\n",
		`path\to\file with "quotes" and \"pre-escaped\"`,
		`trailing backslash \`,
	}

	for _, in := range inputs {
		if got := unescape(Escape(in)); got != in {
			t.Errorf("round trip mangled %q -> %q", in, got)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.cfg.template": "bbb",
		"a.xml.template": "aaa",
		"notes.txt":      "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	assets, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(assets) != 2 {
		t.Fatalf("Discover found %d assets, want 2", len(assets))
	}
	// Sorted by file name.
	if assets[0].FileName != "a.xml.template" || assets[1].FileName != "b.cfg.template" {
		t.Errorf("unexpected order: %s, %s", assets[0].FileName, assets[1].FileName)
	}
	if assets[0].Content != "aaa" {
		t.Errorf("content = %q, want %q", assets[0].Content, "aaa")
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	assets, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir must not be an error, got %v", err)
	}
	if assets != nil {
		t.Errorf("missing dir contributed assets: %v", assets)
	}
}

func TestBlock(t *testing.T) {
	assets := []Asset{
		{FileName: "widget.cfg.template", Content: `size = "big"`},
	}

	got := Block(assets)

	want := "module templates {\n" +
		"  export const WIDGET_CFG_TEMPLATE = \"size = \\\"big\\\"\"\n" +
		"}\n"
	if got != want {
		t.Errorf("Block = %q, want %q", got, want)
	}
}

func TestBlockEmpty(t *testing.T) {
	// Zero templates means no module at all, not an empty placeholder.
	if got := Block(nil); got != "" {
		t.Errorf("Block(nil) = %q, want empty", got)
	}
}
