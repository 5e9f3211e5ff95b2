package evaluator

import "errors"

// ErrEmptyPassword is returned by boundary layers when the submitted
// password is empty. The engine itself accepts empty input and produces a
// zero-valued report; callers reject it up front so users get a clear
// validation error instead of a meaningless score.
var ErrEmptyPassword = errors.New("password is required")
