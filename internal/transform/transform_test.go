package transform

import "testing"

func TestRewriteImportLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "path qualified wildcard import",
			line: "use ../shared/lib/log.nu *",
			want: "use log *",
		},
		{
			name: "selective import qualifier preserved",
			line: "use lib/venv.nu [venv-create venv-activate]",
			want: "use venv [venv-create venv-activate]",
		},
		{
			name: "indentation preserved",
			line: "  use helpers.nu *",
			want: "  use helpers *",
		},
		{
			name: "non-import line untouched",
			line: "let x = (open $path)",
			want: "let x = (open $path)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteImportLine(tt.line); got != tt.want {
				t.Errorf("RewriteImportLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	in := "#!/usr/bin/env nu\nuse ../shared/lib/log.nu *\ndef main [] {\n  log-info \"hi\"\n}\n"
	want := "use log *\ndef main [] {\n  log-info \"hi\"\n}\n"

	if got := Rewrite(in); got != want {
		t.Errorf("Rewrite = %q, want %q", got, want)
	}
}

func TestStripEntry(t *testing.T) {
	in := "#!/usr/bin/env nu\nuse alpha.nu *\nuse beta.nu *\n\nmain\n"
	want := "\nmain\n"

	if got := StripEntry(in); got != want {
		t.Errorf("StripEntry = %q, want %q", got, want)
	}
}
