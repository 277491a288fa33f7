// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"regexp"
	"strings"

	"nubundle/internal/templates"
	"nubundle/pkg/script"
)

// TemplatesDirHelper is the name of the scaffold module's "resolve the
// templates directory" helper. Its entire definition is dropped from the
// bundle, since embedded constants make the directory lookup meaningless.
const TemplatesDirHelper = "templates-dir"

// The scaffold transform is deliberate line surgery keyed to the known,
// fixed shape of exactly one helper in exactly one module. Each pattern only
// fires on an exact match; when the module's internal shape drifts, the
// transform silently does nothing rather than corrupting output.
var (
	// helperStartRe matches the opening line of the templates-dir helper,
	// e.g. `def templates-dir [] {`.
	helperStartRe = regexp.MustCompile(`^def\s+` + TemplatesDirHelper + `\b.*\{\s*$`)

	// pathJoinRe matches a template path computed by joining the directory
	// lookup with a literal file name, capturing the variable and file name:
	// `let path = (templates-dir | path join "settings.xml.template")`.
	pathJoinRe = regexp.MustCompile(`^let\s+([\w-]+)\s*=\s*\(\s*` + TemplatesDirHelper +
		`\s*\|\s*path\s+join\s+"([^"]+)"\s*\)\s*$`)

	// openRe matches reading the computed path from disk, capturing the
	// destination and source variables: `let content = (open --raw $path)`.
	openRe = regexp.MustCompile(`^let\s+([\w-]+)\s*=\s*\(\s*open\s+(?:--raw\s+)?\$([\w-]+)\s*\)\s*$`)
)

// InjectTemplates applies the scaffold rewrite to module content that has
// already been through the baseline Rewrite. It runs a per-line state
// machine:
//
//   - an import of the templates module is injected once, right after the
//     first import line;
//   - the templates-dir helper definition is dropped, from its opening line
//     through its closing brace line;
//   - a "path join" line against a literal template file name is suppressed
//     and its derived constant remembered;
//   - the following "open" of that path becomes an assignment from the
//     embedded constant.
//
// Lines matching none of the patterns pass through unchanged. Callers must
// only invoke this when template assets were actually discovered; with no
// templates there is no constants module to import from.
func InjectTemplates(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	skipping := false
	injected := false
	pendingConst := ""
	pendingVar := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if skipping {
			if trimmed == "}" {
				skipping = false
			}
			continue
		}

		if helperStartRe.MatchString(trimmed) {
			skipping = true
			continue
		}

		if m := pathJoinRe.FindStringSubmatch(trimmed); m != nil {
			pendingVar = m[1]
			pendingConst = templates.ConstName(m[2])
			continue
		}

		if pendingConst != "" {
			if m := openRe.FindStringSubmatch(trimmed); m != nil && m[2] == pendingVar {
				indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
				out = append(out, indent+"let "+m[1]+" = $"+pendingConst)
				pendingConst = ""
				pendingVar = ""
				continue
			}
		}

		out = append(out, line)

		if !injected && script.IsImportLine(line) {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+script.ImportKeyword+" "+templates.ModuleName+" *")
			injected = true
		}
	}

	return strings.Join(out, "\n")
}
