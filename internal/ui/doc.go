// Package ui provides terminal output formatting for argbind.
//
// All output goes to ui.Out (defaults to os.Stderr) to allow testing
// and output redirection. Severity styling:
//   - Warn:    yellow WARNING prefix, non-fatal diagnostics
//   - Fail:    red ERROR prefix, recoverable errors shown to the user
//   - Info:    cyan arrow, secondary information
//   - Success: green checkmark
//
// The argbind core routes its default warning sink through Warn; the
// remaining helpers serve binaries built on the library.
package ui
