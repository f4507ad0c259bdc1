// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/irnix/irnix/internal/issue"
	"github.com/irnix/irnix/internal/launcher"
	"github.com/irnix/irnix/internal/namespace"
	"github.com/irnix/irnix/internal/validate"
	"github.com/irnix/irnix/pkg/contract"
	"github.com/irnix/irnix/pkg/types"
)

// classifyError maps a resolution, validation or exec failure to an issue
// catalog ID and exit code, and returns a styled message for CLI rendering.
// Wrappers are tested before the I/O errors they may carry, so an interface
// whose link dangles is reported as a layout problem and not as I/O.
func classifyError(err error, verbose bool) (issueID issue.Id, code types.ExitCode, styledMsg string) {
	issueID, code = issue.NamespaceIOId, types.ExitEnvironment

	switch {
	case errors.Is(err, namespace.ErrMalformedName):
		issueID, code = issue.MalformedMethodNameId, types.ExitStructural
	case errors.Is(err, validate.ErrNotObject):
		issueID, code = issue.ObjectNotFoundId, types.ExitStructural
	case errors.Is(err, validate.ErrMethodNotExposed):
		issueID, code = issue.MethodNotExposedId, types.ExitStructural

	case errors.Is(err, namespace.ErrManifest),
		errors.Is(err, contract.ErrSyntax),
		errors.Is(err, contract.ErrMissingName),
		errors.Is(err, contract.ErrAmbiguousRequiredness),
		errors.Is(err, contract.ErrErrorCode):
		issueID, code = issue.ContractParseErrorId, types.ExitConfiguration
	case errors.Is(err, namespace.ErrInterfaceLayout),
		errors.Is(err, namespace.ErrInterfaceManifest),
		errors.Is(err, namespace.ErrLinkCycle):
		issueID, code = issue.InterfaceLayoutId, types.ExitConfiguration
	case errors.Is(err, validate.ErrContractMismatch),
		errors.Is(err, validate.ErrTargetManifest):
		issueID, code = issue.InterfaceMismatchId, types.ExitConfiguration

	case errors.Is(err, validate.ErrUnknownFlag),
		errors.Is(err, validate.ErrFlagValueMissing),
		errors.Is(err, validate.ErrRequiredFlagMissing):
		issueID, code = issue.FlagViolationId, types.ExitUsage
	case errors.Is(err, validate.ErrTooFewArgs),
		errors.Is(err, validate.ErrTooManyArgs):
		issueID, code = issue.ArgumentCountId, types.ExitUsage
	case errors.Is(err, validate.ErrStdinRequired),
		errors.Is(err, validate.ErrStdinUnexpected),
		errors.Is(err, validate.ErrStdoutUnexpected):
		issueID, code = issue.StreamViolationId, types.ExitUsage

	case errors.Is(err, launcher.ErrExec):
		issueID, code = issue.ExecFailedId, types.ExitCannotExecute
		if errors.Is(err, fs.ErrNotExist) {
			code = types.ExitNotFound
		}
	}

	return issueID, code, fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// failure wraps err for the fang error handler.
func failure(err error, verbose bool) error {
	issueID, code, msg := classifyError(err, verbose)
	return &ExitError{Code: code, Err: newServiceError(err, issueID, msg)}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
