// SPDX-License-Identifier: MPL-2.0

// Package assemble turns a build plan into the final single-file artifact.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nubundle/internal/resolve"
	"nubundle/internal/templates"
	"nubundle/internal/transform"
	"nubundle/pkg/script"
)

// Plan is the immutable input to assembly. It is built once per invocation
// and never mutated after assembly begins.
type Plan struct {
	// Header is the executable header line (shebang), without newline.
	Header string

	// Templates are the discovered template assets, possibly empty.
	Templates []templates.Asset

	// Shared are the shared modules to wrap in namespace blocks, sorted by
	// name. The inline module must not appear here.
	Shared []resolve.Module

	// Target are the target-specific modules to wrap, sorted by name.
	Target []resolve.Module

	// Inline is the designated shared module whose transformed content is
	// emitted unwrapped, directly visible to the entry script. Nil when the
	// entry's import graph never reaches it.
	Inline *resolve.Module

	// ScaffoldModule names the one target module subject to the template
	// loading rewrite. Ignored when Templates is empty.
	ScaffoldModule string

	// Entry is the raw entry script content.
	Entry string

	// OutputPath is where the artifact is written.
	OutputPath string
}

// Assemble produces the artifact text. Segment order is load-bearing:
// header, templates block, shared blocks, target blocks, import
// declarations, inline module content, entry body. Later segments may
// reference names defined earlier.
func Assemble(p Plan) string {
	var b strings.Builder

	b.WriteString(p.Header)
	b.WriteString("\n")

	b.WriteString(templates.Block(p.Templates))

	for _, m := range p.Shared {
		writeBlock(&b, m.Name, transform.Rewrite(m.Content))
	}

	for _, m := range p.Target {
		body := transform.Rewrite(m.Content)
		if len(p.Templates) > 0 && m.Name == p.ScaffoldModule {
			body = transform.InjectTemplates(body)
		}
		writeBlock(&b, m.Name, body)
	}

	if len(p.Templates) > 0 {
		writeUse(&b, templates.ModuleName)
	}
	for _, m := range p.Shared {
		writeUse(&b, m.Name)
	}
	for _, m := range p.Target {
		writeUse(&b, m.Name)
	}

	if p.Inline != nil {
		b.WriteString(ensureNewline(transform.Rewrite(p.Inline.Content)))
	}

	b.WriteString(ensureNewline(transform.StripEntry(p.Entry)))

	return b.String()
}

// WriteArtifact creates the output directory if absent, writes the artifact,
// and sets the executable bit. These are the bundler's only persistent side
// effects.
func WriteArtifact(p Plan, text string) error {
	dir := filepath.Dir(p.OutputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	if err := os.WriteFile(p.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", p.OutputPath, err)
	}
	if err := os.Chmod(p.OutputPath, 0o755); err != nil {
		return fmt.Errorf("failed to mark artifact executable %s: %w", p.OutputPath, err)
	}
	return nil
}

func writeBlock(b *strings.Builder, name, body string) {
	fmt.Fprintf(b, "module %s {\n", name)
	b.WriteString(ensureNewline(body))
	b.WriteString("}\n")
}

func writeUse(b *strings.Builder, name string) {
	fmt.Fprintf(b, "%s %s *\n", script.ImportKeyword, name)
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
