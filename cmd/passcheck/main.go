// Package main provides the entry point for the passcheck CLI.
//
// Passcheck is a local password strength analyzer and generator.
// It scores passwords, explains their weaknesses, estimates crack time,
// and produces strong replacements without sending anything over the
// network.
//
// Usage:
//
//	passcheck analyze <password>
//	passcheck generate --length 24
//	passcheck serve
//
// See --help for all available options.
package main

// main is the entry point for passcheck.
func main() {
	Execute()
}
