// Package password hashes and verifies user credentials with argon2id.
//
// Hashes are stored in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
//
// where salt and key are unpadded standard base64.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

const (
	// MaxPasswordBytes is the longest input that contributes to a hash.
	// Longer passwords are cut on a rune boundary before hashing and verifying.
	MaxPasswordBytes = 72

	algorithm  = "argon2id"
	saltLength = 16
	keyLength  = 32

	// Upper bounds accepted when decoding a stored hash.
	maxMemory     = 1 << 20 // KiB
	maxIterations = 64
	maxKeyLength  = 128
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Params are the argon2id cost parameters. Memory is in KiB.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

var DefaultParams = Params{Memory: 64 * 1024, Iterations: 3, Parallelism: 2}

// Hasher is stateless apart from its cost parameters and safe for concurrent use.
type Hasher struct {
	params Params
}

// NewHasher returns a Hasher using p, falling back to DefaultParams for zero values.
func NewHasher(p Params) *Hasher {
	if p.Memory == 0 {
		p.Memory = DefaultParams.Memory
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultParams.Iterations
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultParams.Parallelism
	}
	return &Hasher{params: p}
}

// Hash returns the encoded argon2id hash of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey(truncate(plain), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm, argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches the stored hash. Any stored value that
// cannot be decoded, uses another algorithm or carries unusable parameters
// yields false.
func (h *Hasher) Verify(plain, stored string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	p, salt, key, err := decode(stored)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey(truncate(plain), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decode(stored string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, errors.New("malformed hash")
	}
	if parts[1] != algorithm {
		return p, nil, nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, err
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, err
	}
	if p.Iterations == 0 || p.Iterations > maxIterations ||
		p.Parallelism == 0 ||
		p.Memory < 8*uint32(p.Parallelism) || p.Memory > maxMemory {
		return p, nil, nil, errors.New("hash parameters out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, errors.New("invalid salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxKeyLength {
		return p, nil, nil, errors.New("invalid key")
	}

	return p, salt, key, nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) <= MaxPasswordBytes {
		return b
	}
	cut := MaxPasswordBytes
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	return b[:cut]
}
