// Package refdata holds the immutable reference dataset the evaluator
// consults: the common password list, the dictionary word list, the keyboard
// row layout, and the leetspeak substitution table.
//
// The built-in lists are embedded at compile time so the binary is
// self-contained. Deployments can extend the common password and dictionary
// lists through configuration; the keyboard rows and substitution table are
// fixed.
//
// A ReferenceData value is constructed once at startup and never mutated
// afterwards, so it is safe to share across any number of concurrent
// evaluations without locking.
package refdata
