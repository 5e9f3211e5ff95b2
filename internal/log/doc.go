// Package log provides secure logging with automatic sanitization of
// sensitive values, built on top of the standard slog package.
//
// The tool's whole input is a secret: every request carries a candidate
// password in the clear. A stray slog attribute must never leak it, so the
// SecureHandler masks any attribute whose key or value looks sensitive
// before the record reaches the underlying handler:
//   - Password-like keys (password, passwd, pwd, passphrase)
//   - Authentication material (Authorization, Cookie, tokens, API keys)
//   - Values that match credential patterns (JWT, Basic auth, PEM keys)
//
// Masking applies at every level, including debug. Verbose mode widens what
// is logged, never what is revealed.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	logger.Info("analysis complete",
//	    "password", "hunter2",   // logged as "***REDACTED***"
//	    "score", 42,
//	)
//
//	slog.SetDefault(logger)
package log
