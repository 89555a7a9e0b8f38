// Package cli turns the raw command-line tokens of bookbind into a
// validated job configuration. It owns the option scanner, assigns
// positional slots, validates them and renders the usage banner. It never
// writes to stdout or stderr; printing and exit codes are left to the
// caller.
package cli
