// SPDX-License-Identifier: MPL-2.0

// Package bundler orchestrates the bundling pipeline: parse the entry
// script, resolve the reachable module set, discover template assets,
// transform and assemble the artifact, then smoke-test it. The stages run
// strictly in sequence, once per invocation, and any failure is fatal to the
// whole invocation.
package bundler

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"nubundle/internal/assemble"
	"nubundle/internal/config"
	"nubundle/internal/issue"
	"nubundle/internal/resolve"
	"nubundle/internal/templates"
	"nubundle/internal/validate"
	"nubundle/pkg/script"
)

type (
	// Options are the inputs to one bundling invocation.
	Options struct {
		// Target selects which target variant to bundle. Must be a member of
		// the configured target enumeration.
		Target string
		// Config is the effective bundler configuration.
		Config config.Config
		// Logger receives per-stage diagnostics and unresolved-import
		// warnings. Nil means the package default logger.
		Logger *log.Logger
	}

	// Report summarizes a completed (or smoke-test-failed) invocation.
	Report struct {
		// ArtifactPath is where the artifact was written.
		ArtifactPath string
		// Size is the artifact size in bytes.
		Size int64
		// SharedModules and TargetModules are the bundled module names,
		// sorted.
		SharedModules []string
		TargetModules []string
		// InlinedModule is the shared module emitted unwrapped at top level,
		// "" when the import graph never reached it.
		InlinedModule string
		// Templates are the embedded template file names, sorted.
		Templates []string
		// Unresolved are imported names that resolved in no probe location.
		// They are excluded from the bundle by policy, not treated as
		// errors; a misspelled import therefore fails silently here and only
		// surfaces when the artifact runs.
		Unresolved []string
		// Lint are advisory findings for shell template assets.
		Lint []templates.LintIssue
		// Validation is the smoke-test outcome.
		Validation validate.Result
	}

	// Error is a pipeline failure tagged with a renderable issue class.
	Error struct {
		// IssueID selects the issue card shown to the user.
		IssueID issue.Id
		// Err is the underlying error.
		Err error
	}
)

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func fail(id issue.Id, err error) *Error {
	return &Error{IssueID: id, Err: err}
}

// Run executes the pipeline for one target.
//
// On smoke-test failure both the report and a non-nil error are returned:
// the artifact is complete on disk and the report carries the captured
// diagnostic stream, but the invocation must still exit non-zero.
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config

	// Configuration errors are detected before any work begins; in
	// particular the output directory is untouched on a bad selector.
	if !cfg.IsTarget(opts.Target) {
		return nil, fail(issue.UnknownTargetId, issue.NewErrorContext().
			WithOperation("select target").
			WithResource(opts.Target).
			WithSuggestion("Run 'nubundle targets' to list the configured targets").
			Wrap(fmt.Errorf("not in configured target enumeration")).
			BuildError())
	}

	entryPath := cfg.EntryPath(opts.Target)
	entryData, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, fail(issue.EntryScriptNotFoundId, issue.NewErrorContext().
			WithOperation("read entry script").
			WithResource(entryPath).
			WithSuggestion("Run 'nubundle targets' to see expected paths").
			Wrap(err).
			BuildError())
	}
	entry := string(entryData)

	if err := requireDir(cfg.SharedFlatDir()); err != nil {
		return nil, fail(issue.SharedRootNotFoundId, issue.NewErrorContext().
			WithOperation("locate shared module root").
			WithResource(cfg.SharedFlatDir()).
			Wrap(err).
			BuildError())
	}
	if err := requireDir(cfg.TargetDir(opts.Target)); err != nil {
		return nil, fail(issue.TargetRootNotFoundId, issue.NewErrorContext().
			WithOperation("locate target directory").
			WithResource(cfg.TargetDir(opts.Target)).
			Wrap(err).
			BuildError())
	}

	seed := script.Imports(entry)
	logger.Debug("parsed entry script", "path", entryPath, "imports", len(seed))

	roots := resolve.Roots{
		SharedLib:  cfg.SharedLibDir(),
		SharedFlat: cfg.SharedFlatDir(),
		TargetLib:  cfg.TargetLibDir(opts.Target),
	}
	resolved, err := resolve.Resolve(roots, seed)
	if err != nil {
		return nil, fail(issue.TargetRootNotFoundId, issue.WrapWithOperation(err, "resolve modules"))
	}
	for _, name := range resolved.Unresolved {
		logger.Warn("import not found in any module root, excluding from bundle", "module", name)
	}

	assets, err := templates.Discover(cfg.TemplatesPath(opts.Target))
	if err != nil {
		return nil, fail(issue.TargetRootNotFoundId, issue.WrapWithOperation(err, "discover templates"))
	}
	lint := templates.LintShell(assets)
	for _, li := range lint {
		logger.Warn("shell template failed to parse", "template", li.FileName, "err", li.Message)
	}
	logger.Debug("discovered templates", "dir", cfg.TemplatesPath(opts.Target), "count", len(assets))

	plan := buildPlan(cfg, opts.Target, entry, resolved, assets)

	text := assemble.Assemble(plan)
	if err := assemble.WriteArtifact(plan, text); err != nil {
		return nil, fail(issue.ArtifactWriteFailedId, err)
	}
	logger.Debug("wrote artifact", "path", plan.OutputPath, "bytes", len(text))

	report := &Report{
		ArtifactPath:  plan.OutputPath,
		Size:          int64(len(text)),
		SharedModules: moduleNames(plan.Shared),
		TargetModules: moduleNames(plan.Target),
		Templates:     assetNames(assets),
		Unresolved:    resolved.Unresolved,
		Lint:          lint,
	}
	if plan.Inline != nil {
		report.InlinedModule = plan.Inline.Name
	}

	// The artifact stays on disk whatever the smoke test says; a failed run
	// leaves a complete file for inspection, never a half-written one.
	result, err := validate.Smoke(ctx, plan.OutputPath)
	if err != nil {
		return report, fail(issue.SmokeTestFailedId, err)
	}
	report.Validation = result
	if !result.OK() {
		return report, fail(issue.SmokeTestFailedId, issue.NewErrorContext().
			WithOperation("smoke-test artifact").
			WithResource(plan.OutputPath).
			WithSuggestion("The artifact is left on disk for inspection").
			Wrap(fmt.Errorf("exit status %d", result.ExitCode)).
			BuildError())
	}

	return report, nil
}

// buildPlan assembles the immutable build plan from the resolved module set.
// The inline module is pulled out of the shared blocks; the scaffold rewrite
// is selected by name and gated on templates actually existing.
func buildPlan(cfg config.Config, target, entry string, resolved resolve.Result, assets []templates.Asset) assemble.Plan {
	plan := assemble.Plan{
		Header:         cfg.Interpreter,
		Templates:      assets,
		ScaffoldModule: cfg.ScaffoldModule,
		Entry:          entry,
		OutputPath:     cfg.OutputPath(target),
	}

	for _, name := range resolved.SharedNames() {
		m := resolved.Modules[name]
		if name == cfg.InlineModule {
			inline := m
			plan.Inline = &inline
			continue
		}
		plan.Shared = append(plan.Shared, m)
	}
	for _, name := range resolved.TargetNames() {
		plan.Target = append(plan.Target, resolved.Modules[name])
	}

	return plan
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func moduleNames(mods []resolve.Module) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name)
	}
	return names
}

func assetNames(assets []templates.Asset) []string {
	names := make([]string, 0, len(assets))
	for _, a := range assets {
		names = append(names, a.FileName)
	}
	return names
}
