// Package evaluator implements the password strength engine.
//
// The engine runs a fixed pipeline of analyzers over the submitted password:
// character composition, weak pattern detection, security list checks, and
// entropy estimation. A synthesis stage then derives the score, the strength
// level, and the recommendation list from the collected findings.
//
// Design decision: We use a coordinator over small per-concern analyzers
// rather than one monolithic function because:
//  1. Each analyzer is a pure function of the password and reference data,
//     which keeps them individually testable
//  2. The report assembly order stays explicit in one place
//  3. New checks slot in without touching existing ones
//
// Evaluate is total: it never fails, never blocks, and never touches
// external resources. Any number of evaluations may run concurrently against
// a shared evaluator because all referenced state is immutable.
package evaluator
