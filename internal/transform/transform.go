// SPDX-License-Identifier: MPL-2.0

// Package transform rewrites module source for inline embedding.
//
// The baseline transform applies to every bundled module: import lines are
// rewritten so path-qualified references become the bare inlined module
// names, and shebang headers are dropped. The scaffold transform in
// scaffold.go additionally rewrites the one module known to load template
// assets from disk.
package transform

import (
	"strings"

	"nubundle/pkg/script"
)

// Rewrite returns module content suitable for embedding inside a namespaced
// block: shebang lines are dropped and each import line references the bare
// module name, preserving indentation and any trailing import qualifier.
func Rewrite(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if script.IsShebang(line) {
			continue
		}
		out = append(out, RewriteImportLine(line))
	}

	return strings.Join(out, "\n")
}

// RewriteImportLine rewrites a single import line to reference the inlined
// module name. Non-import lines are returned unchanged.
func RewriteImportLine(line string) string {
	ref, ok := script.ParseImportLine(line)
	if !ok {
		return line
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	rewritten := indent + script.ImportKeyword + " " + ref.Name
	if ref.Qualifier != "" {
		rewritten += " " + ref.Qualifier
	}
	return rewritten
}

// StripEntry prepares the entry script body for the artifact tail: the
// shebang and all import lines are removed (their modules are inlined above
// the body), everything else passes through verbatim.
func StripEntry(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if script.IsShebang(line) || script.IsImportLine(line) {
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
