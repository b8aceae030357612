// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// contentKeySize is the AES-256 key length in bytes.
	contentKeySize = 32

	// saltSize is the password-KDF salt length in bytes.
	saltSize = 16

	// ivSize is the 96-bit GCM nonce length recommended for AES-GCM.
	ivSize = 12
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	// PBKDF2 iteration count. Stored in the struct so tests can lower it
	// without touching the production constant.
	kdfIterations int
}

// NewCipherService constructs a [CipherService] with PBKDF2-SHA256 at
// 100000 iterations, the cost the note format was defined with. Changing it
// would orphan every previously created password-protected note.
func NewCipherService() CipherService {
	return &cipherService{kdfIterations: 100_000}
}

// GenerateContentKey implements [CipherService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (c *cipherService) GenerateContentKey() ([]byte, error) {
	key := make([]byte, contentKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateSalt implements [CipherService]. It reads 16 random bytes from the
// OS CSPRNG. Returns an error if the random read fails.
func (c *cipherService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Encrypt implements [CipherService]. It seals plaintext with AES-256-GCM
// under a freshly generated 12-byte IV and returns ciphertext and IV
// separately — the detached layout the wire format uses. The GCM tag is
// carried inside the ciphertext.
func (c *cipherService) Encrypt(plaintext string, key []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)
	return ciphertext, iv, nil
}

// Decrypt implements [CipherService]. It opens a detached-IV AES-256-GCM
// blob. An authentication error almost always means the wrong key — for
// protected notes, a wrong password producing a wrong derived key.
func (c *cipherService) Decrypt(ciphertext, iv, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if len(iv) != gcm.NonceSize() {
		return "", ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// ExportKey implements [CipherService]. Standard Base64 of the raw key
// bytes — the compact form embedded in share-link fragments.
func (c *cipherService) ExportKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// ImportKey implements [CipherService]. It decodes the Base64 form produced
// by ExportKey and rejects anything that is not exactly 32 bytes.
func (c *cipherService) ImportKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeySize, err)
	}
	if len(key) != contentKeySize {
		return nil, ErrInvalidKeySize
	}
	return key, nil
}

// newGCM builds an AES-GCM AEAD from a 256-bit key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
