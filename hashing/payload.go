package hashing

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
)

// PRF identifies the pseudo-random function used inside the key derivation.
// The numeric values are part of the wire format and must not change.
type PRF uint32

const (
	// PRFHMACSHA1 selects PBKDF2 with HMAC-SHA1 (legacy; verify only).
	PRFHMACSHA1 PRF = 0
	// PRFHMACSHA256 selects PBKDF2 with HMAC-SHA256 (legacy; verify only).
	PRFHMACSHA256 PRF = 1
	// PRFHMACSHA512 selects PBKDF2 with HMAC-SHA512. This is the strongest
	// supported PRF and the only one used for newly produced hashes.
	PRFHMACSHA512 PRF = 2
)

// String returns the conventional name of the PRF.
func (p PRF) String() string {
	switch p {
	case PRFHMACSHA1:
		return "hmac-sha1"
	case PRFHMACSHA256:
		return "hmac-sha256"
	case PRFHMACSHA512:
		return "hmac-sha512"
	default:
		return fmt.Sprintf("prf(%d)", uint32(p))
	}
}

// hashFunc returns the hash constructor backing the PRF, or nil for an
// unknown PRF value.
func (p PRF) hashFunc() func() hash.Hash {
	switch p {
	case PRFHMACSHA1:
		return sha1.New
	case PRFHMACSHA256:
		return sha256.New
	case PRFHMACSHA512:
		return sha512.New
	default:
		return nil
	}
}

const (
	// formatMarkerV3 is the first payload byte of a version-3 hash.
	formatMarkerV3 = 0x01

	// headerSize is marker (1) + PRF (4) + iterations (4) + salt length (4).
	headerSize = 13

	// minSaltSize and minSubkeySize are the smallest salt and subkey (in
	// bytes) accepted during verification: 128 bits each.
	minSaltSize   = 16
	minSubkeySize = 16
)

// payload holds the fields of a decoded version-3 hash.
type payload struct {
	prf        PRF
	iterations uint32
	salt       []byte
	subkey     []byte
}

// encodePayload serialises the fields into the version-3 byte layout.
// All integer fields are big-endian, matching the .NET implementation's
// network byte order.
func encodePayload(p *payload) []byte {
	out := make([]byte, headerSize+len(p.salt)+len(p.subkey))
	out[0] = formatMarkerV3
	binary.BigEndian.PutUint32(out[1:5], uint32(p.prf))
	binary.BigEndian.PutUint32(out[5:9], p.iterations)
	binary.BigEndian.PutUint32(out[9:13], uint32(len(p.salt)))
	copy(out[headerSize:], p.salt)
	copy(out[headerSize+len(p.salt):], p.subkey)
	return out
}

// decodePayload parses a version-3 payload. It is a total parse function:
// every structural violation — short buffer, wrong marker, unknown PRF,
// zero iteration count, undersized salt or subkey, a salt length pointing
// past the end of the buffer — returns a wrapped [ErrInvalidHash] and never
// panics. The returned slices alias raw.
func decodePayload(raw []byte) (*payload, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("%w: payload is %d bytes, header needs %d",
			ErrInvalidHash, len(raw), headerSize)
	}
	if raw[0] != formatMarkerV3 {
		return nil, fmt.Errorf("%w: unknown format marker 0x%02x", ErrInvalidHash, raw[0])
	}

	prf := PRF(binary.BigEndian.Uint32(raw[1:5]))
	if prf.hashFunc() == nil {
		return nil, fmt.Errorf("%w: unknown PRF id %d", ErrInvalidHash, uint32(prf))
	}

	iterations := binary.BigEndian.Uint32(raw[5:9])
	if iterations == 0 {
		return nil, fmt.Errorf("%w: iteration count must be ≥ 1", ErrInvalidHash)
	}

	saltLen := binary.BigEndian.Uint32(raw[9:13])
	if saltLen < minSaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, minimum is %d",
			ErrInvalidHash, saltLen, minSaltSize)
	}
	// uint64 arithmetic so a hostile salt length cannot overflow the bound
	// check on 32-bit platforms.
	if uint64(len(raw)) < headerSize+uint64(saltLen)+minSubkeySize {
		return nil, fmt.Errorf("%w: payload too short for %d-byte salt and subkey",
			ErrInvalidHash, saltLen)
	}

	saltEnd := headerSize + int(saltLen)
	return &payload{
		prf:        prf,
		iterations: iterations,
		salt:       raw[headerSize:saltEnd],
		subkey:     raw[saltEnd:],
	}, nil
}
