// SPDX-License-Identifier: MPL-2.0

// Package script provides line-oriented analysis of Nushell source files.
//
// The bundler never interprets the scripts it reads; everything in this
// package works on trimmed lines and whitespace-delimited tokens. An import
// line is a line that, after trimming, starts with the "use" keyword followed
// by a space. Exactly one import per line is supported — there is no
// recursive or multi-line import syntax.
package script

import (
	"path"
	"strings"
)

const (
	// ImportKeyword is the reserved word that opens an import line.
	ImportKeyword = "use"

	// Ext is the Nushell source file extension.
	Ext = ".nu"
)

// ImportRef is one parsed import line.
type ImportRef struct {
	// Path is the module reference exactly as written, which may carry
	// directory components (e.g. "../shared/lib/log.nu" or "group/module.nu").
	Path string

	// Name is the module name: the reference's basename with its extension
	// stripped. Directory components never participate in naming.
	Name string

	// Qualifier is the trailing text after the module reference, preserved
	// verbatim (e.g. "*" for a wildcard import, or "[venv-create]").
	Qualifier string
}

// IsImportLine reports whether the line is an import line.
func IsImportLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, ImportKeyword+" ")
}

// IsShebang reports whether the line is an executable header line.
func IsShebang(line string) bool {
	return strings.HasPrefix(line, "#!")
}

// ParseImportLine parses a single line as an import. The second return value
// is false when the line is not an import line.
func ParseImportLine(line string) (ImportRef, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ImportKeyword+" ") {
		return ImportRef{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ImportKeyword+" "))
	if rest == "" {
		return ImportRef{}, false
	}

	ref := rest
	qualifier := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		ref = rest[:i]
		qualifier = strings.TrimSpace(rest[i:])
	}

	return ImportRef{
		Path:      ref,
		Name:      ModuleName(ref),
		Qualifier: qualifier,
	}, true
}

// ModuleName derives a module name from an import reference or file path:
// the slash-normalized basename with its extension removed.
func ModuleName(ref string) string {
	base := path.Base(strings.ReplaceAll(ref, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Imports returns the distinct modules referenced by the source's import
// lines, preserving first-occurrence order. Deduplication is by module name,
// so two references that resolve to the same basename count once.
func Imports(content string) []ImportRef {
	var refs []ImportRef
	seen := map[string]bool{}

	for _, line := range strings.Split(content, "\n") {
		ref, ok := ParseImportLine(line)
		if !ok || seen[ref.Name] {
			continue
		}
		seen[ref.Name] = true
		refs = append(refs, ref)
	}

	return refs
}
