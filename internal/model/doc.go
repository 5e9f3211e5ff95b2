// Package model defines the core data structures used throughout passcheck.
//
// This package contains the following main types:
//   - Report: The complete result of evaluating a single password
//   - CharacterProfile: Per-class character counts and presence flags
//   - PatternFindings: Detected weak patterns (repeats, runs, keyboard walks)
//   - SecurityFindings: Common-password, breach, and policy check results
//   - Level: The qualitative strength band derived from the score
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (evaluator, report, server, history) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON with the exact key set of
// the analyzer wire format, and to be safe for read-only sharing between
// goroutines once an evaluation completes.
package model
