package hashing_test

import (
	"bytes"
	"crypto/sha1"
	"encoding/base64"
	"testing"

	"github.com/hasbyte1/go-identity-utils/hashing"
)

// FuzzVerify ensures that PBKDF2Hasher.Verify never panics on arbitrary
// stored-hash input and always returns one of the three defined outcomes.
// Verification must be total over attacker-controlled strings.
//
// Run with: go test -fuzz=FuzzVerify ./hashing/
func FuzzVerify(f *testing.F) {
	h, err := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	if err != nil {
		f.Fatal(err)
	}

	// Seed corpus: valid hashes, legacy records, and known-invalid inputs.
	valid, _ := h.Make("seed-password")
	seeds := []string{
		"",
		"not base64",
		base64.StdEncoding.EncodeToString([]byte{0x01}),
		base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, 13)),
		packRecord(99, 1, 16, bytes.Repeat([]byte{0xAA}, 16), bytes.Repeat([]byte{0xBB}, 32)),
		packRecord(2, 1, 0xFFFFFFFF, nil, nil),
		craftRecord("seed-password", 0, 1, sha1.New),
		valid,
	}
	for _, s := range seeds {
		f.Add(s, "seed-password")
	}

	f.Fuzz(func(t *testing.T, hash, password string) {
		switch h.Verify(password, hash) {
		case hashing.VerificationFailed,
			hashing.VerificationSuccess,
			hashing.VerificationSuccessRehashNeeded:
		default:
			t.Fatalf("Verify returned an undefined result for hash %q", hash)
		}
	})
}

// FuzzMakeRoundTrip ensures that every hash Make produces verifies for the
// password that produced it and parses cleanly via Info.
func FuzzMakeRoundTrip(f *testing.F) {
	h, err := hashing.NewPBKDF2Hasher(fastPBKDF2Opts())
	if err != nil {
		f.Fatal(err)
	}

	f.Add("hello")
	f.Add("")
	f.Add("correct horse battery staple")
	f.Add("pa\x00ss\xffword")

	f.Fuzz(func(t *testing.T, password string) {
		encoded, err := h.Make(password)
		if err != nil {
			t.Fatalf("Make returned unexpected error: %v", err)
		}
		if got := h.Verify(password, encoded); got != hashing.VerificationSuccess {
			t.Fatalf("round-trip Verify = %v for password of length %d", got, len(password))
		}
		if _, err := h.Info(encoded); err != nil {
			t.Fatalf("Info failed on freshly made hash: %v", err)
		}
	})
}
