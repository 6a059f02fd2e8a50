package domain

import "errors"

// Session token failures. The HTTP layer intentionally collapses both into a
// single generic unauthorized message; the distinction exists for callers and
// tests only.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")
