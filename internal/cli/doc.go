// Package cli turns command-line arguments into a validated app.Config and
// reports bad input as an ExitError carrying the process exit code.
package cli
