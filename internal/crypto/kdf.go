// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKeyFromPassword implements [CipherService]. It stretches password
// into a 256-bit AES key using PBKDF2-SHA256 with the iteration count fixed
// at construction (100000 in production). The derivation is deterministic:
// the same password and salt always yield the same key, which is what lets
// the recipient re-derive the unwrap key at read time.
//
// The KDF is deliberately slow and dominates client-side latency; callers
// should keep it off any rendering-critical path.
//
// A minimum password length is a caller policy (the client app enforces 6
// characters); this layer only refuses the empty password and a salt that is
// not 16 bytes.
func (c *cipherService) DeriveKeyFromPassword(password string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if len(salt) != saltSize {
		return nil, ErrInvalidSalt
	}

	return pbkdf2.Key([]byte(password), salt, c.kdfIterations, contentKeySize, sha256.New), nil
}
