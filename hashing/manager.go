package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe format registry and dispatcher for password
// hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// format, and then call [Manager.Make] / [Manager.Verify] /
// [Manager.NeedsRehash] through the Manager for all day-to-day hashing
// operations. Only the identity-v3 format ships with this package, but the
// registry leaves room for future format versions to coexist during a
// migration — hashes from any registered format can then be verified via
// [Manager.VerifyWithDetect].
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterFormat, SetDefaultFormat)
// while allowing concurrent reads (Make, Verify, etc.).
type Manager struct {
	mu      sync.RWMutex
	formats map[FormatName]Hasher
	def     FormatName
}

// NewManager creates an empty Manager with the given default format name.
// Formats must be registered with [Manager.RegisterFormat] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant.
func NewManager(defaultFormat FormatName) *Manager {
	return &Manager{
		formats: make(map[FormatName]Hasher),
		def:     defaultFormat,
	}
}

// NewDefaultManager creates a Manager with the identity-v3 hasher registered
// under its recommended default options and set as the default format.
//
//	m, err := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	h, err := NewPBKDF2Hasher(DefaultPBKDF2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default pbkdf2 hasher: %w", err)
	}
	m := NewManager(FormatIdentityV3)
	_ = m.RegisterFormat(FormatIdentityV3, h)
	return m, nil
}

// RegisterFormat adds or replaces a named hasher in the Manager.
// It is safe to call RegisterFormat while other goroutines are using the
// Manager.
func (m *Manager) RegisterFormat(name FormatName, h Hasher) error {
	if name == "" {
		return ErrEmptyFormatName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formats[name] = h
	return nil
}

// Format returns the [Hasher] registered under name, or [ErrFormatNotFound]
// if no such format has been registered.
func (m *Manager) Format(name FormatName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormatNotFound, name)
	}
	return h, nil
}

// SetDefaultFormat changes the format used by [Manager.Make],
// [Manager.Verify], and [Manager.NeedsRehash]. The named format must already
// be registered.
func (m *Manager) SetDefaultFormat(name FormatName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.formats[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterFormat first",
			ErrFormatNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultFormat returns the name of the currently configured default format.
func (m *Manager) DefaultFormat() FormatName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasFormat reports whether a format with the given name is registered.
func (m *Manager) HasFormat(name FormatName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.formats[name]
	return ok
}

// Make hashes password using the default format.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Verify checks password against hash using the default format.
//
// If the default format has not been registered the outcome is
// [VerificationFailed]: Verify stays total even when the Manager is
// misconfigured.
func (m *Manager) Verify(password, hash string) VerificationResult {
	h, err := m.resolveDefault()
	if err != nil {
		return VerificationFailed
	}
	return h.Verify(password, hash)
}

// VerifyWithDetect checks password against hash by detecting which format
// produced the hash. This is what callers want when hashes from multiple
// format versions coexist in one credential store.
//
// An unrecognised or unregistered format yields [VerificationFailed].
func (m *Manager) VerifyWithDetect(password, hash string) VerificationResult {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return VerificationFailed
	}
	return h.Verify(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed.
//
// It returns true when:
//  1. The hash was produced by a different format than the current default, OR
//  2. The hash was produced by the current default format but with weaker
//     parameters than its current configuration.
//
// On the next successful verification, callers should call [Manager.Make]
// and persist the new hash when this returns true.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectFormat(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// Different format → always needs rehash to match the current default.
	if detected != def {
		return true, nil
	}

	// Same format — delegate to the hasher to compare parameters.
	h, err := m.Format(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash using the default format.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// InfoWithDetect extracts metadata from hash by detecting which format
// produced it.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.formats[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default format %q has not been registered",
			ErrFormatNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectFormat(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Format(name)
}
