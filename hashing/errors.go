package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	info, err := hasher.Info(hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
//
// Note that [Hasher.Verify] never returns an error: malformed input is
// reported as [VerificationFailed] there.
var (
	// ErrInvalidHash is returned when a hash string cannot be parsed because
	// it has invalid base64, a truncated payload, an unrecognised format
	// marker, or out-of-range header fields.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., an
	// iteration count of zero or a nil random source).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrFormatNotFound is returned by [Manager.Format] or indirectly by
	// [Manager.Make] / [Manager.Verify] when the requested format has not
	// been registered.
	ErrFormatNotFound = errors.New("hashing: format not found")

	// ErrEmptyFormatName is returned by [Manager.RegisterFormat] when the
	// supplied format name is an empty string.
	ErrEmptyFormatName = errors.New("hashing: format name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterFormat] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")
)
