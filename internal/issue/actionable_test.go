package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := NewErrorContext().
		WithOperation("read entry script").
		WithResource("python/setup.nu").
		Wrap(cause).
		Build()

	want := "failed to read entry script: python/setup.nu: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestActionableErrorFormatIncludesSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("select target").
		WithSuggestion("Run 'nubundle targets'").
		WithSuggestion("Check for typos").
		Build()

	got := err.Format()
	if !strings.Contains(got, "Run 'nubundle targets'") || !strings.Contains(got, "Check for typos") {
		t.Errorf("Format() missing suggestions: %q", got)
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
