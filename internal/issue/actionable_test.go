// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "find input file"},
			expected: "failed to find input file",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "find input file",
				Resource:  "castle",
			},
			expected: "failed to find input file: castle",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to load configuration: config.cue: syntax error at line 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	root := errors.New("no such file")
	err := &ActionableError{
		Operation:   "find input file",
		Resource:    "castle",
		Suggestions: []string{"Check the spelling", "Set --input_fmt"},
		Cause:       fmt.Errorf("stat castle.vox: %w", root),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "\n  • Check the spelling") || !strings.Contains(plain, "\n  • Set --input_fmt") {
		t.Errorf("Format(false) missing suggestions:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Fatalf("Format(true) missing error chain:\n%s", verbose)
	}
	if !strings.Contains(verbose, "2. no such file") {
		t.Errorf("Format(true) should list wrapped causes in order:\n%s", verbose)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapWithOperation(sentinel, "save scene")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
	if WrapWithOperation(nil, "save scene") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("find input file").
		WithResource("scene").
		WithSuggestion("one").
		WithSuggestions("two", "three").
		WithIssue(InputFileNotFoundID).
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "find input file" || ae.Resource != "scene" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 3 {
		t.Errorf("Suggestions = %v, want 3 entries", ae.Suggestions)
	}
	if ae.Issue != InputFileNotFoundID {
		t.Errorf("Issue = %d, want %d", ae.Issue, InputFileNotFoundID)
	}
	if !errors.Is(ae, cause) {
		t.Error("Build() should keep the cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}
