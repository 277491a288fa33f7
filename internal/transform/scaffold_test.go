package transform

import (
	"strings"
	"testing"
)

const scaffoldSource = `use log *
def templates-dir [] {
  $env.FILE_PWD | path join "templates"
}
def write-settings [] {
  let path = (templates-dir | path join "settings.xml.template")
  let content = (open $path)
  $content | save settings.xml
}
`

func TestInjectTemplates(t *testing.T) {
	got := InjectTemplates(scaffoldSource)

	want := `use log *
use templates *
def write-settings [] {
  let content = $SETTINGS_XML_TEMPLATE
  $content | save settings.xml
}
`
	if got != want {
		t.Errorf("InjectTemplates = %q, want %q", got, want)
	}
}

func TestInjectTemplatesInjectsOnce(t *testing.T) {
	in := "use log *\nuse fs *\ndef x [] { }\n"
	got := InjectTemplates(in)

	if n := strings.Count(got, "use templates *"); n != 1 {
		t.Errorf("templates import injected %d times, want 1\n%s", n, got)
	}
	// Injection happens right after the first import line.
	lines := strings.Split(got, "\n")
	if lines[1] != "use templates *" {
		t.Errorf("templates import at line %q position, want second line", lines[1])
	}
}

func TestInjectTemplatesOpenVariant(t *testing.T) {
	in := `use log *
def scaffold [] {
  let p = (templates-dir | path join "widget.cfg.template")
  let raw = (open --raw $p)
}
`
	got := InjectTemplates(in)

	if !strings.Contains(got, "let raw = $WIDGET_CFG_TEMPLATE") {
		t.Errorf("open --raw not rewritten:\n%s", got)
	}
	if strings.Contains(got, "path join") {
		t.Errorf("path join line survived:\n%s", got)
	}
}

func TestInjectTemplatesMissIsHarmless(t *testing.T) {
	// When the module's internal shape has drifted, nothing fires and no
	// line is corrupted.
	in := "use log *\ndef helper [] {\n  let path = ($dir | path join \"settings.xml.template\")\n  let content = (open $path)\n}\n"
	got := InjectTemplates(in)

	if !strings.Contains(got, "let path = ($dir | path join \"settings.xml.template\")") {
		t.Errorf("unrelated path join was rewritten:\n%s", got)
	}
	if !strings.Contains(got, "let content = (open $path)") {
		t.Errorf("unrelated open was rewritten:\n%s", got)
	}
}

func TestInjectTemplatesNoImportLine(t *testing.T) {
	// A module with no import line gets no injected import at all.
	in := "def x [] { }\n"
	got := InjectTemplates(in)

	if strings.Contains(got, "use templates") {
		t.Errorf("import injected without an anchor import line:\n%s", got)
	}
}
