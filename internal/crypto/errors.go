package crypto

import "errors"

// Sentinel errors returned by the cipher layer. Callers should match with
// [errors.Is].
var (
	// ErrEncryptionFailed is returned when sealing plaintext fails, which
	// in practice means the key has the wrong size or the CSPRNG failed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned on any authentication failure:
	// tampered ciphertext, wrong key, or wrong IV. The cause is never
	// narrowed further.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPassword is the single error surfaced by the password
	// unwrap chain. Wrong password and corrupted bundle are deliberately
	// indistinguishable.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEmptyPassword is returned by the KDF when given an empty password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrInvalidSalt is returned by the KDF when the salt is not 16 bytes.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidKeySize is returned when imported key material does not
	// decode to a 256-bit key.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMetadataSecretMissing is returned when constructing a metadata
	// cipher without a deployment secret. Fail fast: running without
	// metadata encryption silently is not an option.
	ErrMetadataSecretMissing = errors.New("metadata encryption secret is required")

	// ErrMetadataFormat is returned internally when an encoded metadata
	// field does not consist of three colon-joined Base64 segments.
	ErrMetadataFormat = errors.New("invalid encrypted metadata format")
)
