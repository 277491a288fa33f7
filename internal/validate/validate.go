// SPDX-License-Identifier: MPL-2.0

// Package validate smoke-tests a freshly written artifact.
package validate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// helpFlag is the innocuous flag the artifact is invoked with. It exercises
// the interpreter's parse of the whole file without running any setup logic.
const helpFlag = "--help"

// Result captures the smoke-test outcome.
type Result struct {
	// ExitCode is the artifact's exit status. Zero means the smoke test
	// passed.
	ExitCode int
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured diagnostic stream.
	Stderr string
}

// OK reports whether the smoke test passed.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Smoke executes the artifact with a help flag and captures its exit status.
// A non-zero exit is reported through the Result, not as an error; the error
// return covers failures to spawn the process at all (missing interpreter,
// permission problems).
func Smoke(ctx context.Context, artifactPath string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, artifactPath, helpFlag)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("failed to execute artifact %s: %w", artifactPath, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
