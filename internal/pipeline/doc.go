// Package pipeline provides concurrent batch evaluation of password lists.
//
// The audit use case is wordlist hygiene: run every candidate in a
// newline-delimited file through the evaluation engine and summarize how
// the set holds up. Per-item results keep only masked echoes and metrics,
// so an audit report can be shared without leaking the list it was run
// against.
//
// Batch processing bounds parallelism with errgroup and honors context
// cancellation.
package pipeline
