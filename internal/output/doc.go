// Package output formats analysis reports for display or machine
// consumption.
//
// Two formats are supported:
//   - text — human-readable terminal output, styled with lipgloss (default)
//   - json — structured document with the full analysis and the suggestion
//
// Use [GetWriter] for a [Writer] by format string, or [Write] to handle
// destination selection (file path or stdout).
package output
