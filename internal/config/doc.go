// SPDX-License-Identifier: MPL-2.0

// Package config loads irnix settings using Viper with CUE as the file format.
//
// The file lives at $XDG_CONFIG_HOME/irnix/config.cue (~/Library/Application
// Support/irnix/config.cue on macOS, %APPDATA%\irnix\config.cue on Windows)
// and is validated against the embedded #Config schema before being merged
// over the defaults. IRNIX_NAMESPACE and IRNIX_VERBOSE override file values.
package config
