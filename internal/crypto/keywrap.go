// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"github.com/MKhiriev/vaultnote/models"
)

// EncryptWithPassword implements [CipherService]. It performs the full
// key-wrapping flow for a password-protected note:
//
//  1. generate a fresh random content key Kc;
//  2. encrypt the plaintext with Kc, producing (ciphertext, iv);
//  3. generate a random salt and derive Kp from the password;
//  4. export Kc to its string form and encrypt that string with Kp under a
//     fresh keyIv, producing the wrapped key.
//
// The returned bundle is everything the server may see. Kc and the password
// exist only in this function's frame.
func (c *cipherService) EncryptWithPassword(plaintext, password string) (models.ProtectedPayload, error) {
	contentKey, err := c.GenerateContentKey()
	if err != nil {
		return models.ProtectedPayload{}, err
	}

	ciphertext, iv, err := c.Encrypt(plaintext, contentKey)
	if err != nil {
		return models.ProtectedPayload{}, err
	}

	salt, err := c.GenerateSalt()
	if err != nil {
		return models.ProtectedPayload{}, err
	}

	passwordKey, err := c.DeriveKeyFromPassword(password, salt)
	if err != nil {
		return models.ProtectedPayload{}, err
	}

	encryptedKey, keyIV, err := c.Encrypt(c.ExportKey(contentKey), passwordKey)
	if err != nil {
		return models.ProtectedPayload{}, err
	}

	return models.ProtectedPayload{
		Ciphertext:   ciphertext,
		IV:           iv,
		Salt:         salt,
		EncryptedKey: encryptedKey,
		KeyIV:        keyIV,
	}, nil
}

// DecryptWithPassword implements [CipherService]. It re-derives the password
// key, unwraps the content key and decrypts the note body.
//
// Constant error shape: wrong password, corrupted wrapped key, damaged
// ciphertext — all of it surfaces as ErrInvalidPassword, nothing else. The
// unwrap chain must not become a password oracle through error detail, and
// each failing step performs no early bookkeeping that would make timing
// meaningfully distinguishable beyond the KDF cost all paths share.
func (c *cipherService) DecryptWithPassword(payload models.ProtectedPayload, password string) (string, error) {
	passwordKey, err := c.DeriveKeyFromPassword(password, payload.Salt)
	if err != nil {
		return "", ErrInvalidPassword
	}

	exportedKey, err := c.Decrypt(payload.EncryptedKey, payload.KeyIV, passwordKey)
	if err != nil {
		return "", ErrInvalidPassword
	}

	contentKey, err := c.ImportKey(exportedKey)
	if err != nil {
		return "", ErrInvalidPassword
	}

	plaintext, err := c.Decrypt(payload.Ciphertext, payload.IV, contentKey)
	if err != nil {
		return "", ErrInvalidPassword
	}

	return plaintext, nil
}
