// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/irnix/irnix/internal/issue"
	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/pkg/types"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"success", nil, types.ExitSuccess},
		{"unclassified", errors.New("unknown command"), types.ExitStructural},
		{"exit error", &ExitError{Code: types.ExitConfiguration}, types.ExitConfiguration},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: types.ExitUsage}), types.ExitUsage},
		{"child status", childExit(&launcher.ChildExitError{Code: 42}), 42},
		{"signaled child", childExit(&launcher.ChildExitError{Code: -1}), types.ExitStructural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Quiet(t *testing.T) {
	t.Parallel()

	if !childExit(&launcher.ChildExitError{Code: 3}).quiet() {
		t.Error("child exit should render nothing")
	}
	svc := &ExitError{Code: types.ExitUsage, Err: newServiceError(errors.New("bad"), issue.ArgumentCountId, "")}
	if svc.quiet() {
		t.Error("service error should be rendered")
	}
	if got := (&ExitError{Code: 4}).Error(); got != "irnix: exit status 4" {
		t.Errorf("Error() = %q", got)
	}
}
