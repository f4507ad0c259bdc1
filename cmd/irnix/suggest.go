// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/irnix/irnix/internal/namespace"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// suggestMethods returns up to maxSuggestions names that fuzzily match name,
// best first. name itself is never suggested.
func suggestMethods(name string, names []string) []string {
	matches := fuzzy.Find(name, names)
	sort.Sort(matches)

	results := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(results) == maxSuggestions {
			break
		}
		if candidate := names[m.Index]; candidate != name {
			results = append(results, candidate)
		}
	}
	return results
}

// failUnknown classifies err like fail and, when the namespace holds methods
// close to name, lists them under the error message.
func (a *App) failUnknown(ctx context.Context, name string, err error) error {
	failed := a.fail(err)

	var svcErr *ServiceError
	if !errors.As(failed, &svcErr) {
		return failed
	}
	sess, sessErr := a.session(ctx)
	if sessErr != nil {
		return failed
	}
	names, listErr := namespace.ListMethods(a.Store, sess.root)
	if listErr != nil {
		slog.Debug("skipping suggestions", "error", listErr)
		return failed
	}

	hints := suggestMethods(name, names)
	if len(hints) == 0 {
		return failed
	}
	var b strings.Builder
	b.WriteString(svcErr.StyledMessage)
	b.WriteString("\n" + SubtitleStyle.Render("Did you mean?") + "\n")
	for _, hint := range hints {
		b.WriteString("  " + CmdStyle.Render(hint) + "\n")
	}
	svcErr.StyledMessage = b.String()
	return failed
}
