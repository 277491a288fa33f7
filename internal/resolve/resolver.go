// SPDX-License-Identifier: MPL-2.0

// Package resolve discovers the transitive module set reachable from an
// entry script's imports.
//
// Resolution is a worklist traversal over two module roots. Each name is
// probed in a fixed priority order — shared library, shared flat location,
// target library — and classified by the first location that has it. Names
// found in none of the three locations are not an error: they are assumed to
// be built-in or externally supplied facilities and are excluded from the
// bundle. Callers should surface them as warnings.
package resolve

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"nubundle/pkg/script"
)

// Root classifies which module root a module was found in.
type Root int

const (
	// RootShared marks modules found under the shared root (library or flat).
	RootShared Root = iota
	// RootTarget marks modules found under the target-specific library.
	RootTarget
)

// String returns the root's display name.
func (r Root) String() string {
	if r == RootShared {
		return "shared"
	}
	return "target"
}

type (
	// Module is one discovered source module.
	Module struct {
		// Name is the unique module name (basename without extension).
		Name string
		// Root records which module root the file was found in.
		Root Root
		// Path is the resolved file path.
		Path string
		// Content is the raw file content, read once at discovery time.
		Content string
		// Imports are the module's own parsed import lines.
		Imports []script.ImportRef
	}

	// Roots are the probe locations, in priority order.
	Roots struct {
		// SharedLib is the conventional shared module directory (shared/lib).
		SharedLib string
		// SharedFlat is the alternate flat shared location, home of the
		// module that gets inlined at top level.
		SharedFlat string
		// TargetLib is the target-specific module directory (<target>/lib).
		TargetLib string
	}

	// Result holds the classified reachable module set.
	Result struct {
		// Modules maps every resolved module name to its module. A name
		// appears in exactly one classification; when both roots provide a
		// file for the same name, the shared copy wins by probe order.
		Modules map[string]Module
		// Unresolved lists imported names that resolved in no probe
		// location, sorted and deduplicated.
		Unresolved []string
	}
)

// SharedNames returns the sorted names of modules classified as shared.
func (r Result) SharedNames() []string { return r.names(RootShared) }

// TargetNames returns the sorted names of modules classified as target.
func (r Result) TargetNames() []string { return r.names(RootTarget) }

func (r Result) names(root Root) []string {
	var names []string
	for name, m := range r.Modules {
		if m.Root == root {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve runs the worklist traversal seeded with the given imports.
//
// The result is a set, not a list: for identical inputs the classified sets
// are identical regardless of traversal order, including diamond-shaped
// graphs where two modules import the same third module.
func Resolve(roots Roots, seed []script.ImportRef) (Result, error) {
	result := Result{Modules: map[string]Module{}}

	worklist := append([]script.ImportRef(nil), seed...)
	unresolved := map[string]bool{}

	for len(worklist) > 0 {
		ref := worklist[0]
		worklist = worklist[1:]

		if _, done := result.Modules[ref.Name]; done || unresolved[ref.Name] {
			continue
		}

		mod, found, err := probe(roots, ref)
		if err != nil {
			return Result{}, err
		}
		if !found {
			unresolved[ref.Name] = true
			continue
		}

		result.Modules[mod.Name] = mod
		for _, imp := range mod.Imports {
			if _, done := result.Modules[imp.Name]; !done && !unresolved[imp.Name] {
				worklist = append(worklist, imp)
			}
		}
	}

	for name := range unresolved {
		result.Unresolved = append(result.Unresolved, name)
	}
	sort.Strings(result.Unresolved)

	return result, nil
}

// probe searches the three locations in priority order and loads the module
// from the first hit.
func probe(roots Roots, ref script.ImportRef) (Module, bool, error) {
	locations := []struct {
		dir  string
		root Root
	}{
		{roots.SharedLib, RootShared},
		{roots.SharedFlat, RootShared},
		{roots.TargetLib, RootTarget},
	}

	for _, loc := range locations {
		if loc.dir == "" {
			continue
		}
		for _, rel := range candidates(ref) {
			p := filepath.Join(loc.dir, filepath.FromSlash(rel))
			info, err := os.Stat(p)
			if err != nil || info.IsDir() {
				continue
			}

			data, err := os.ReadFile(p)
			if err != nil {
				return Module{}, false, fmt.Errorf("failed to read module %s: %w", p, err)
			}
			content := string(data)

			return Module{
				Name:    ref.Name,
				Root:    loc.root,
				Path:    p,
				Content: content,
				Imports: script.Imports(content),
			}, true, nil
		}
	}

	return Module{}, false, nil
}

// candidates returns the relative paths to probe under each root for a
// reference. The full relative path (minus any leading self/parent segments)
// is tried first so namespaced references like "group/module.nu" land in the
// right subdirectory; the bare basename is the fallback.
func candidates(ref script.ImportRef) []string {
	p := path.Clean(strings.ReplaceAll(ref.Path, "\\", "/"))

	segs := strings.Split(p, "/")
	for len(segs) > 0 && (segs[0] == "." || segs[0] == "..") {
		segs = segs[1:]
	}
	rel := strings.Join(segs, "/")
	if rel == "" {
		rel = ref.Name
	}
	if path.Ext(rel) == "" {
		rel += script.Ext
	}

	base := path.Base(rel)
	if rel != base {
		return []string{rel, base}
	}
	return []string{rel}
}
