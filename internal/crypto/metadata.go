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
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// metadataSalt is the fixed application-wide salt for deriving the
	// metadata key. Fixed on purpose: the key must be deterministic per
	// deployment secret so every instance derives the same key. Versioned
	// so a future rotation can re-encrypt under a new derivation.
	metadataSalt = "vaultnote-metadata-salt-v1"

	// metadataAAD domain-separates metadata ciphertexts from any other use
	// of the same key.
	metadataAAD = "metadata"

	// metadataIVSize is 16 bytes, matching the stored format.
	metadataIVSize = 16

	// decryptionFailedSentinel is what DecryptField hands to user-facing
	// code paths instead of an error: metadata is decorative, a damaged
	// field must not take down a note read.
	decryptionFailedSentinel = "[Decryption Failed]"
)

// MetadataCipher encrypts note metadata (title, author, category) at rest
// with a server-held key derived once from the deployment secret. This is
// defense-in-depth for the operator's database, NOT part of the
// zero-knowledge content guarantee: the server can always decrypt these
// fields, by design, for dashboards and admin tooling.
type MetadataCipher struct {
	aead cipher.AEAD
}

// NewMetadataCipher derives the 256-bit metadata key from secret via scrypt
// (N=32768, r=8, p=1) with the fixed application salt and builds the AEAD.
// The derivation runs once at startup; EncryptField/DecryptField are cheap.
//
// Fails fast with ErrMetadataSecretMissing when secret is empty.
func NewMetadataCipher(secret string) (*MetadataCipher, error) {
	if secret == "" {
		return nil, ErrMetadataSecretMissing
	}

	key, err := scrypt.Key([]byte(secret), []byte(metadataSalt), 32768, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("derive metadata key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create metadata cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, metadataIVSize)
	if err != nil {
		return nil, fmt.Errorf("create metadata gcm: %w", err)
	}

	return &MetadataCipher{aead: aead}, nil
}

// EncryptField authenticated-encrypts a single metadata string with a fresh
// random IV. The output is a delimited, reversible text format:
//
//	base64(iv) ":" base64(ciphertext) ":" base64(tag)
//
// Empty input round-trips to empty output so optional fields stay optional.
func (m *MetadataCipher) EncryptField(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	iv := make([]byte, metadataIVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	sealed := m.aead.Seal(nil, iv, []byte(plaintext), []byte(metadataAAD))

	// Seal appends the tag; split it back out for the stored format.
	tagStart := len(sealed) - m.aead.Overhead()
	ciphertext, tag := sealed[:tagStart], sealed[tagStart:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ciphertext),
		base64.StdEncoding.EncodeToString(tag),
	}, ":"), nil
}

// DecryptField reverses EncryptField. It fails closed: any malformed input,
// decode failure or authentication mismatch yields the "[Decryption Failed]"
// sentinel rather than an error, because metadata is non-critical decorative
// data and a damaged title must not block access to the note body.
func (m *MetadataCipher) DecryptField(encoded string) string {
	if encoded == "" {
		return ""
	}

	plaintext, err := m.decryptField(encoded)
	if err != nil {
		return decryptionFailedSentinel
	}
	return plaintext
}

func (m *MetadataCipher) decryptField(encoded string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 {
		return "", ErrMetadataFormat
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataFormat, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataFormat, err)
	}
	tag, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataFormat, err)
	}

	if len(iv) != metadataIVSize {
		return "", ErrMetadataFormat
	}

	sealed := append(ciphertext, tag...)
	plaintext, err := m.aead.Open(nil, iv, sealed, []byte(metadataAAD))
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}
