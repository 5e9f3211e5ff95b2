// Package generator produces random passwords that satisfy the basic
// composition policy: at least one lowercase letter, one uppercase letter,
// one digit, and one symbol.
//
// All randomness comes from crypto/rand with unbiased integer draws, so
// generated passwords are suitable for real credentials. The generator is
// independent of the evaluation engine; callers that want a strength report
// for a generated password evaluate it separately.
package generator
