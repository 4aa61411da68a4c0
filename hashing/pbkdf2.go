package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultPBKDF2Iterations is the default key-derivation iteration count.
	// It matches the ASP.NET Core Identity default, which exceeds the OWASP
	// recommendation for PBKDF2-HMAC-SHA512.
	DefaultPBKDF2Iterations uint32 = 100_000

	// saltSize is the length of newly generated salts in bytes (128 bits).
	saltSize = 16

	// subkeySize is the length of newly derived subkeys in bytes (256 bits).
	subkeySize = 32
)

// PBKDF2Options configures a [PBKDF2Hasher].
//
// The iteration count is encoded into every produced payload, so raising it
// only affects newly produced hashes; existing hashes remain verifiable and
// are flagged for re-hashing on the next successful verification.
//
// Salt size (16 bytes), subkey size (32 bytes), and the production PRF
// (HMAC-SHA512) are fixed properties of the format, not options.
type PBKDF2Options struct {
	// Iterations is the PBKDF2 round count for newly produced hashes and
	// the target against which stored hashes are judged stale.
	// Minimum: 1. Default: [DefaultPBKDF2Iterations].
	Iterations uint32

	// Rand is the source of salt bytes. There is no ambient fallback: the
	// hasher uses exactly the reader it was constructed with, which keeps
	// entropy an explicit, swappable dependency in tests.
	// [DefaultPBKDF2Options] sets it to [crypto/rand.Reader].
	Rand io.Reader
}

// DefaultPBKDF2Options returns PBKDF2Options with the recommended defaults:
// 100,000 iterations and the operating system's secure random source.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		Iterations: DefaultPBKDF2Iterations,
		Rand:       rand.Reader,
	}
}

func validatePBKDF2Options(opts PBKDF2Options) error {
	if opts.Iterations < 1 {
		return fmt.Errorf("%w: pbkdf2 iterations must be ≥ 1, got %d",
			ErrInvalidOption, opts.Iterations)
	}
	if opts.Rand == nil {
		return fmt.Errorf("%w: pbkdf2 random source must not be nil", ErrInvalidOption)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Hasher hashes passwords in the ASP.NET Core Identity version-3
// format: PBKDF2 with HMAC-SHA512 over a random 128-bit salt, producing a
// 256-bit subkey, serialised into the self-describing binary payload
// documented in the package comment and base64-encoded for storage.
//
// Verification reads every parameter from the stored payload, so it also
// accepts hashes produced under HMAC-SHA1 or HMAC-SHA256 or with a different
// iteration count — those verify correctly and come back as
// [VerificationSuccessRehashNeeded].
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use,
// provided the configured random source is (crypto/rand.Reader is).
type PBKDF2Hasher struct {
	opts PBKDF2Options
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher with the given options.
// Use [DefaultPBKDF2Options] for recommended defaults.
func NewPBKDF2Hasher(opts PBKDF2Options) (*PBKDF2Hasher, error) {
	if err := validatePBKDF2Options(opts); err != nil {
		return nil, err
	}
	return &PBKDF2Hasher{opts: opts}, nil
}

// Format returns [FormatIdentityV3].
func (h *PBKDF2Hasher) Format() FormatName { return FormatIdentityV3 }

// Options returns the current parameter set.
func (h *PBKDF2Hasher) Options() PBKDF2Options { return h.opts }

// Make hashes password with PBKDF2-HMAC-SHA512 and returns the base64
// encoding of the version-3 payload. A fresh 16-byte salt is read from the
// configured random source on each call.
//
// The returned error is non-nil only when the random source fails, which
// callers should treat as unrecoverable: producing a hash without genuine
// randomness would be unsafe.
func (h *PBKDF2Hasher) Make(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(h.opts.Rand, salt); err != nil {
		return "", fmt.Errorf("hashing: pbkdf2: failed to generate salt: %w", err)
	}
	subkey := pbkdf2.Key([]byte(password), salt,
		int(h.opts.Iterations), subkeySize, PRFHMACSHA512.hashFunc())

	raw := encodePayload(&payload{
		prf:        PRFHMACSHA512,
		iterations: h.opts.Iterations,
		salt:       salt,
		subkey:     subkey,
	})
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Verify checks password against the stored hash.
//
// The PRF, iteration count, and salt are read from the payload itself and a
// candidate subkey of the stored subkey's exact length is re-derived from
// password. The two subkeys are compared with
// [crypto/subtle.ConstantTimeCompare].
//
// Verify is total: bad base64, a truncated payload, an unknown marker or
// PRF, or an undersized salt or subkey all yield [VerificationFailed],
// indistinguishable from a wrong password. On a match, the stored
// parameters are judged against the current configuration: an iteration
// count below the configured target, or any PRF weaker than HMAC-SHA512,
// yields [VerificationSuccessRehashNeeded].
func (h *PBKDF2Hasher) Verify(password, hash string) VerificationResult {
	raw, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(raw) == 0 {
		return VerificationFailed
	}
	p, err := decodePayload(raw)
	if err != nil {
		return VerificationFailed
	}

	candidate := pbkdf2.Key([]byte(password), p.salt,
		int(p.iterations), len(p.subkey), p.prf.hashFunc())
	if subtle.ConstantTimeCompare(candidate, p.subkey) != 1 {
		return VerificationFailed
	}

	if p.iterations < h.opts.Iterations || p.prf != PRFHMACSHA512 {
		return VerificationSuccessRehashNeeded
	}
	return VerificationSuccess
}

// NeedsRehash reports whether the stored hash was produced with weaker
// parameters than the current configuration: an iteration count below the
// configured target, or a PRF other than HMAC-SHA512. It inspects the
// header only; no password is required.
//
// Salt length is deliberately not a staleness trigger — a valid stored hash
// never becomes stale on salt size alone.
func (h *PBKDF2Hasher) NeedsRehash(hash string) (bool, error) {
	p, err := h.decode(hash)
	if err != nil {
		return false, err
	}
	return p.iterations < h.opts.Iterations || p.prf != PRFHMACSHA512, nil
}

// Info parses the payload and returns the encoded parameters without
// verifying anything.
//
// Returned [HashInfo].Params:
//   - "prf"        → PRF
//   - "iterations" → uint32
//   - "salt_len"   → int (bytes)
//   - "subkey_len" → int (bytes)
func (h *PBKDF2Hasher) Info(hash string) (HashInfo, error) {
	p, err := h.decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Format: FormatIdentityV3,
		Params: map[string]any{
			"prf":        p.prf,
			"iterations": p.iterations,
			"salt_len":   len(p.salt),
			"subkey_len": len(p.subkey),
		},
	}, nil
}

// decode base64-decodes and parses hash, mapping bad base64 to
// [ErrInvalidHash] like any other structural defect.
func (h *PBKDF2Hasher) decode(hash string) (*payload, error) {
	raw, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrInvalidHash, err)
	}
	return decodePayload(raw)
}
