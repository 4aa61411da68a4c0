package hashing_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-identity-utils/hashing"
)

// Example_pbkdf2Hasher demonstrates the recommended out-of-the-box setup.
func Example_pbkdf2Hasher() {
	h, err := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	if err != nil {
		log.Fatal(err)
	}

	hash, err := h.Make("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(h.Verify("my-secret-password", hash))
	fmt.Println(h.Verify("wrong-password", hash))
	// Output:
	// success
	// failed
}

// Example_rehashOnLogin demonstrates the transparent parameter-upgrade flow:
// verify first, then re-hash and persist when the stored parameters are
// stale. The user never notices.
func Example_rehashOnLogin() {
	h, err := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	if err != nil {
		log.Fatal(err)
	}

	stored, _ := h.Make("my-secret-password")

	switch h.Verify("my-secret-password", stored) {
	case hashing.VerificationSuccess:
		fmt.Println("authenticated")
	case hashing.VerificationSuccessRehashNeeded:
		fmt.Println("authenticated, upgrading hash")
		newHash, _ := h.Make("my-secret-password")
		_ = newHash // persist in place of the stored hash
	case hashing.VerificationFailed:
		fmt.Println("rejected")
	}
	// Output: authenticated
}

// Example_manager demonstrates dispatching through the format registry.
func Example_manager() {
	m, err := hashing.NewDefaultManager()
	if err != nil {
		log.Fatal(err)
	}

	hash, _ := m.Make("my-secret-password")
	fmt.Println(m.VerifyWithDetect("my-secret-password", hash))
	// Output: success
}

// ExampleDetectFormat shows format sniffing on an opaque stored hash.
func ExampleDetectFormat() {
	h, _ := hashing.NewPBKDF2Hasher(hashing.DefaultPBKDF2Options())
	hash, _ := h.Make("my-secret-password")

	name, ok := hashing.DetectFormat(hash)
	fmt.Println(name, ok)

	_, ok = hashing.DetectFormat("$2y$12$not-an-identity-hash")
	fmt.Println(ok)
	// Output:
	// identity-v3 true
	// false
}
