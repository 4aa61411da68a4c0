package hashing

import "encoding/base64"

// FormatName identifies a hash format version.
// Using a named string type prevents accidental confusion with plain strings.
type FormatName string

const (
	// FormatIdentityV3 selects the ASP.NET Core Identity version-3 format
	// (PBKDF2, format marker 0x01).
	FormatIdentityV3 FormatName = "identity-v3"
)

// VerificationResult is the outcome of [Hasher.Verify].
type VerificationResult int

const (
	// VerificationFailed means the password did not match, or the stored hash
	// was malformed. The two cases are deliberately indistinguishable.
	VerificationFailed VerificationResult = iota

	// VerificationSuccess means the password matched and the stored
	// parameters meet the current configuration.
	VerificationSuccess

	// VerificationSuccessRehashNeeded means the password matched but the
	// hash was produced with weaker parameters than the current
	// configuration. Callers should re-hash the password and persist the
	// new value.
	VerificationSuccessRehashNeeded
)

// String returns a human-readable name for the result.
func (r VerificationResult) String() string {
	switch r {
	case VerificationSuccess:
		return "success"
	case VerificationSuccessRehashNeeded:
		return "success-rehash-needed"
	case VerificationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Hasher is the core interface satisfied by all password-hash formats.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same password will produce different outputs.
	//
	// The only failure mode is the random source failing to supply salt
	// bytes; callers should treat that error as unrecoverable.
	Make(password string) (string, error)

	// Verify checks password against the previously encoded hash and
	// reports one of three outcomes. It is total over all string inputs:
	// malformed or truncated hashes yield [VerificationFailed], never an
	// error or a panic.
	//
	// Subkey comparison is performed in constant time to prevent timing
	// attacks.
	Verify(password, hash string) VerificationResult

	// NeedsRehash reports whether the hash was produced with parameters
	// that are weaker than the hasher's current configuration. It inspects
	// the hash header only and does not verify any password.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying
	// it. Useful for auditing, migration tooling, or logging.
	Info(hash string) (HashInfo, error)

	// Format returns the FormatName implemented by this hasher.
	Format() FormatName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Format is the hash format that produced the hash.
	Format FormatName

	// Params holds format-specific parameters extracted from the payload.
	//
	// For identity-v3:
	//   "prf"        → PRF
	//   "iterations" → uint32
	//   "salt_len"   → int (bytes)
	//   "subkey_len" → int (bytes)
	Params map[string]any
}

// DetectFormat inspects a hash string and returns the [FormatName] that
// produced it. It is a best-effort heuristic based on the payload's format
// marker and does not verify the hash itself.
//
// The second return value is false when the hash format is not recognised.
func DetectFormat(hash string) (FormatName, bool) {
	raw, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	if raw[0] == formatMarkerV3 {
		return FormatIdentityV3, true
	}
	return "", false
}
