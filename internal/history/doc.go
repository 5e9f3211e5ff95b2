// Package history provides SQLite-based storage for past analysis results.
//
// Stored records are summaries only: the masked echo, the label, and the
// numeric findings. A submitted password never reaches this package; callers
// hand over a Report and the record derivation keeps the mask and drops
// everything else that could reconstruct the input.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package history
