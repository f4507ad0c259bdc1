// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the irnix command tree.
//
// Every command receives an *App, the composition root holding the config
// provider, the namespace store, terminal detection and the launcher. Errors
// leave RunE handlers as *ExitError values wrapping a *ServiceError, which
// the fang error handler renders together with the matching issue catalog
// entry.
package cmd
