// Package hashing provides password hashing and verification compatible with
// ASP.NET Core Identity's version-3 hash format.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. One format ships with
// this package: [PBKDF2Hasher], which produces and verifies the self-describing
// binary payload ASP.NET Core Identity stores for its users (format marker
// 0x01). Callers can depend on the interface rather than the concrete type,
// which leaves room for additional format versions without touching call sites.
//
// The [Manager] is a format registry and dispatcher. Register named [Hasher]
// implementations, designate one as the default, then delegate all hashing
// operations through the [Manager].
//
// # Quick start
//
//	h, err := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Make("my-secret-password")
//	switch h.Verify("my-secret-password", hash) {
//	case hashing.VerificationSuccess:
//	    // authenticated
//	case hashing.VerificationSuccessRehashNeeded:
//	    // authenticated; re-hash and persist the new value
//	case hashing.VerificationFailed:
//	    // reject
//	}
//
// # Binary format
//
// The encoded hash is standard base64 over the following byte layout, with
// every integer field big-endian:
//
//	offset 0   1 byte    format marker (0x01)
//	offset 1   4 bytes   PRF id (0=HMAC-SHA1, 1=HMAC-SHA256, 2=HMAC-SHA512)
//	offset 5   4 bytes   iteration count
//	offset 9   4 bytes   salt length n
//	offset 13  n bytes   salt
//	remainder            subkey (PBKDF2 output)
//
// All parameters are self-contained in the payload, so a hash produced with
// older settings verifies correctly after the configuration changes. Hashes
// written by ASP.NET Core Identity verify as-is, and hashes produced here
// verify under .NET.
//
// # Security defaults
//
//   - PBKDF2 with HMAC-SHA512, 100,000 iterations, 16-byte salt,
//     32-byte subkey. Verification accepts SHA-1 and SHA-256 payloads for
//     compatibility but flags them for re-hashing.
//   - Subkey comparison uses [crypto/subtle.ConstantTimeCompare], so
//     verification time does not depend on where the subkeys first differ.
//
// # Verification semantics
//
// [Hasher.Verify] is a total function over all string inputs: malformed
// base64, truncated payloads, unknown markers, and undersized salts or
// subkeys all yield [VerificationFailed], indistinguishable from a wrong
// password. [VerificationSuccessRehashNeeded] means the password matched but
// the stored parameters are weaker than the current configuration; callers
// should re-hash on the spot and persist the result without involving the
// user.
package hashing
