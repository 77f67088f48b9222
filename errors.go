package vncdes

import "errors"

// Every error the package returns for user-supplied input wraps one of
// these sentinels, so callers can classify with errors.Is. The
// operations are deterministic; retrying with the same input reproduces
// the same error.
var (
	// ErrInvalidKeyFormat reports a key that is not exactly 16 hex
	// characters.
	ErrInvalidKeyFormat = errors.New("vncdes: invalid key format")

	// ErrEmptyPassword reports an empty password.
	ErrEmptyPassword = errors.New("vncdes: password is empty")

	// ErrPasswordTooLong reports a password over the configured limit
	// under the strict length policy.
	ErrPasswordTooLong = errors.New("vncdes: password too long")

	// ErrInvalidHexInput reports malformed hex where an encrypted block
	// was expected.
	ErrInvalidHexInput = errors.New("vncdes: invalid hex input")

	// ErrInvalidBlockLength reports byte input that is not the fixed
	// 8-byte block (or 16-byte challenge) the protocol defines.
	ErrInvalidBlockLength = errors.New("vncdes: invalid block length")

	// ErrInvalidConfig reports contradictory or out-of-range
	// configuration settings.
	ErrInvalidConfig = errors.New("vncdes: invalid config")
)
