// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/irnix/irnix/internal/issue"
	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/validate"
	"github.com/irnix/irnix/pkg/contract"
	"github.com/irnix/irnix/pkg/types"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantIssue issue.Id
		wantCode  types.ExitCode
	}{
		{"malformed name", &namespace.MalformedNameError{Name: "io"}, issue.MalformedMethodNameId, types.ExitStructural},
		{"not an object", &validate.NotObjectError{Path: "/ns/io", Err: fs.ErrNotExist}, issue.ObjectNotFoundId, types.ExitStructural},
		{"not exposed", &validate.MethodNotExposedError{Method: "drop"}, issue.MethodNotExposedId, types.ExitStructural},
		{"manifest", &namespace.ManifestError{Path: "/ns/io/.self", Err: contract.ErrSyntax}, issue.ContractParseErrorId, types.ExitConfiguration},
		{"bare syntax", fmt.Errorf("line 1: %w", contract.ErrSyntax), issue.ContractParseErrorId, types.ExitConfiguration},
		{"layout", &namespace.InterfaceLayoutError{Path: "/ns/__io__", Reason: "dangling link", Err: fs.ErrNotExist}, issue.InterfaceLayoutId, types.ExitConfiguration},
		{"interface manifest", &namespace.InterfaceManifestError{Path: "/ns/__io__"}, issue.InterfaceLayoutId, types.ExitConfiguration},
		{"link cycle", &namespace.LinkCycleError{Path: "/ns/a"}, issue.InterfaceLayoutId, types.ExitConfiguration},
		{"mismatch", &validate.ContractMismatchError{Contract: "write"}, issue.InterfaceMismatchId, types.ExitConfiguration},
		{"target manifest", &validate.TargetManifestError{}, issue.InterfaceMismatchId, types.ExitConfiguration},
		{"unknown flag", &validate.UsageError{Flag: "x", Err: validate.ErrUnknownFlag}, issue.FlagViolationId, types.ExitUsage},
		{"required flag", &validate.UsageError{Flag: "out", Err: validate.ErrRequiredFlagMissing}, issue.FlagViolationId, types.ExitUsage},
		{"too many", &validate.UsageError{Given: 3, Err: validate.ErrTooManyArgs}, issue.ArgumentCountId, types.ExitUsage},
		{"stdout", &validate.StreamError{Err: validate.ErrStdoutUnexpected}, issue.StreamViolationId, types.ExitUsage},
		{"exec not found", &launcher.ExecError{Path: "/x", Err: fs.ErrNotExist}, issue.ExecFailedId, types.ExitNotFound},
		{"exec denied", &launcher.ExecError{Path: "/x", Err: fs.ErrPermission}, issue.ExecFailedId, types.ExitCannotExecute},
		{"io", fmt.Errorf("read dir: %w", fs.ErrPermission), issue.NamespaceIOId, types.ExitEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotIssue, gotCode, msg := classifyError(tt.err, false)
			if gotIssue != tt.wantIssue {
				t.Errorf("issue = %d, want %d", gotIssue, tt.wantIssue)
			}
			if gotCode != tt.wantCode {
				t.Errorf("code = %d, want %d", gotCode, tt.wantCode)
			}
			if !strings.Contains(msg, tt.err.Error()) {
				t.Errorf("message %q does not contain %q", msg, tt.err.Error())
			}
		})
	}
}

func TestFailure_WrapsServiceError(t *testing.T) {
	t.Parallel()

	err := failure(&validate.StreamError{Contract: "write", Err: validate.ErrStdinRequired}, false)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != types.ExitUsage {
		t.Fatalf("failure() = %v, want ExitError with code %d", err, types.ExitUsage)
	}
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) || svcErr.IssueID != issue.StreamViolationId {
		t.Fatalf("failure() = %v, want a ServiceError for the stream issue", err)
	}
	if !errors.Is(err, validate.ErrStdinRequired) {
		t.Error("failure() should keep the sentinel reachable")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	ae := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("/tmp/config.cue").
		WithSuggestion("Run 'irnix config init'").
		Wrap(plain).
		BuildError()
	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "load configuration") || !strings.Contains(got, "irnix config init") {
		t.Errorf("formatErrorForDisplay(actionable) = %q", got)
	}
}
