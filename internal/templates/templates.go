// SPDX-License-Identifier: MPL-2.0

// Package templates discovers external template assets and embeds them as
// string constants so the generated artifact needs no companion files at
// runtime.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Suffix is the file suffix that marks a template asset.
	Suffix = ".template"

	// ModuleName is the name of the synthesized constants module.
	ModuleName = "templates"

	// constSuffix is appended to every derived constant identifier.
	constSuffix = "_TEMPLATE"
)

// Asset is one discovered template file.
type Asset struct {
	// FileName is the asset's base file name (e.g. "settings.xml.template").
	FileName string
	// Content is the raw file content.
	Content string
}

// ConstName returns the asset's constant identifier.
func (a Asset) ConstName() string {
	return ConstName(a.FileName)
}

// Discover enumerates the template assets in dir, sorted by file name.
// A missing directory is not an error: it simply contributes no assets, and
// callers must treat zero assets as "no templates module at all", not as an
// empty placeholder.
func Discover(dir string) ([]Asset, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory %s: %w", dir, err)
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}
		assets = append(assets, Asset{FileName: entry.Name(), Content: string(data)})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].FileName < assets[j].FileName })
	return assets, nil
}

// ConstName derives the constant identifier for a template file name:
// strip the template suffix, map remaining dots and hyphens to underscores,
// upper-case, append the constant suffix.
// "settings.xml.template" becomes "SETTINGS_XML_TEMPLATE".
func ConstName(fileName string) string {
	name := strings.TrimSuffix(fileName, Suffix)
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ToUpper(name) + constSuffix
}

// Escape prepares raw template content for embedding in a double-quoted
// string literal. Backslashes are escaped before quotes; the reverse order
// would double-escape the inserted escape characters.
func Escape(content string) string {
	escaped := strings.ReplaceAll(content, `\`, `\\`)
	return strings.ReplaceAll(escaped, `"`, `\"`)
}

// Block renders the namespaced constants module for the given assets.
// The returned text ends with a newline. An empty asset list renders nothing.
func Block(assets []Asset) string {
	if len(assets) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "module %s {\n", ModuleName)
	for _, a := range assets {
		fmt.Fprintf(&b, "  export const %s = \"%s\"\n", a.ConstName(), Escape(a.Content))
	}
	b.WriteString("}\n")
	return b.String()
}
