// Package cli is responsible for parsing the inspector's own command-line
// arguments, validating user input, and handling process-level concerns
// like exit codes. It translates CLI flags into the application's internal
// configuration — using the argv library itself, so the tool is its own
// first consumer.
package cli
