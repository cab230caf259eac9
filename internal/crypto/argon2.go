// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/agil-auth/internal/utils"
	"golang.org/x/crypto/argon2"
)

var (
	// ErrMalformedHash is returned by Verify when the encoded credential
	// cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrIncompatibleVersion is returned by Verify when the encoded
	// credential was produced by a different Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Argon2Params holds the Argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - salt length: 16 bytes
//   - key length:  32 bytes (256 bits)
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		SaltLen: 16,
		KeyLen:  32, // 256 bits
	}
}

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	params Argon2Params
	pepper string

	dummyOnce sync.Once
	dummy     string
}

// NewArgon2Hasher constructs a [PasswordHasher] backed by Argon2id.
//
// Zero salt or key lengths fall back to the defaults. When pepper is
// non-empty, passwords are HMAC-SHA256'd with it before derivation, so a
// leaked credential table alone is not enough to mount a dictionary attack.
func NewArgon2Hasher(params Argon2Params, pepper string) PasswordHasher {
	defaults := DefaultArgon2Params()
	if params.SaltLen == 0 {
		params.SaltLen = defaults.SaltLen
	}
	if params.KeyLen == 0 {
		params.KeyLen = defaults.KeyLen
	}

	return &argon2Hasher{
		params: params,
		pepper: pepper,
	}
}

// Hash implements [PasswordHasher]. The result uses the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey(h.prepare(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. Parameters are read from encoded, so
// credentials created under older settings keep verifying after a change.
func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(h.prepare(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// VerifyDummy implements [PasswordHasher].
func (h *argon2Hasher) VerifyDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = h.Hash("dummy-password-for-timing")
	})
	_, _ = h.Verify(password, h.dummy)
}

func (h *argon2Hasher) prepare(password string) []byte {
	if h.pepper == "" {
		return []byte(password)
	}
	return []byte(utils.HashString(password, h.pepper))
}

func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, ErrIncompatibleVersion
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return Argon2Params{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Argon2Params{}, nil, nil, ErrMalformedHash
	}
	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
