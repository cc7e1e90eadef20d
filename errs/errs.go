// Package errs defines the sentinel errors returned by linefit packages.
//
// Functions wrap these values with additional context using fmt.Errorf and the %w verb,
// so callers should compare with errors.Is rather than equality.
package errs

import "errors"

// Dataset and regression errors.
var (
	// ErrInsufficientData is returned when a dataset has fewer samples than an operation needs.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrDegenerateInput is returned when the x values have zero variance and no finite slope exists.
	ErrDegenerateInput = errors.New("degenerate input: x values have zero variance")
	// ErrInvalidInput is returned for non-finite or malformed values reaching the core.
	ErrInvalidInput = errors.New("invalid input")
)

// Rational approximation errors.
var (
	// ErrApproximationNotConverged is returned when the fraction search exhausts its
	// denominator or iteration ceiling before reaching the requested tolerance.
	ErrApproximationNotConverged = errors.New("rational approximation did not converge")
)

// Snapshot errors.
var (
	// ErrInvalidSnapshot is returned when snapshot bytes are truncated or malformed.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrChecksumMismatch is returned when the snapshot payload fingerprint does not match its header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrUnsupportedCompression is returned for an unknown compression identifier.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
