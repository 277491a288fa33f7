package templates

import "testing"

func TestLintShell(t *testing.T) {
	assets := []Asset{
		{FileName: "good.sh.template", Content: "#!/bin/sh\necho ok\n"},
		{FileName: "bad.sh.template", Content: "if [ true; then\n"},
		{FileName: "settings.xml.template", Content: "<not shell>"},
	}

	issues := LintShell(assets)

	if len(issues) != 1 {
		t.Fatalf("LintShell returned %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].FileName != "bad.sh.template" {
		t.Errorf("flagged %s, want bad.sh.template", issues[0].FileName)
	}
	if issues[0].Message == "" {
		t.Error("issue carries no parser diagnostic")
	}
}

func TestLintShellNoShellAssets(t *testing.T) {
	assets := []Asset{
		{FileName: "settings.xml.template", Content: "if [ broken"},
	}
	if issues := LintShell(assets); issues != nil {
		t.Errorf("non-shell assets linted: %v", issues)
	}
}
