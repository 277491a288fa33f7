// SPDX-License-Identifier: MPL-2.0

package templates

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// shellSuffix marks template assets that are expected to contain POSIX shell.
const shellSuffix = ".sh" + Suffix

// LintIssue is one advisory finding from template linting.
type LintIssue struct {
	// FileName is the offending asset.
	FileName string
	// Message is the parser diagnostic.
	Message string
}

// LintShell syntax-checks the shell-script template assets (those ending in
// ".sh.template") and returns advisory findings. Findings never block the
// bundle: the bundler has no say over assets the runtime may never execute
// as POSIX shell.
func LintShell(assets []Asset) []LintIssue {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))

	var issues []LintIssue
	for _, a := range assets {
		if !strings.HasSuffix(a.FileName, shellSuffix) {
			continue
		}
		if _, err := parser.Parse(strings.NewReader(a.Content), a.FileName); err != nil {
			issues = append(issues, LintIssue{FileName: a.FileName, Message: err.Error()})
		}
	}
	return issues
}
