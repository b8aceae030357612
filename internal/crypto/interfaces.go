package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

import "github.com/MKhiriev/vaultnote/models"

// CipherService owns all client-side note cryptography in the zero-knowledge
// scheme. It knows nothing about the network, the database or users; its
// single job is to produce and protect content keys.
//
// Unprotected flow:
//
//	Kc              = GenerateContentKey()            (step 1)
//	ct, iv          = Encrypt(plaintext, Kc)          (step 2)
//	fragment        = ExportKey(Kc)                   (step 3, travels only after '#')
//
// Password flow (key wrapping):
//
//	Kc              = GenerateContentKey()            (step 1)
//	ct, iv          = Encrypt(plaintext, Kc)          (step 2)
//	salt            = GenerateSalt()                  (step 3)
//	Kp              = DeriveKeyFromPassword(pw, salt) (step 3)
//	encKey, keyIv   = Encrypt(ExportKey(Kc), Kp)      (step 4)
//
// The raw Kc and the password are never transmitted or stored.
type CipherService interface {
	// GenerateContentKey produces a fresh random 256-bit symmetric key
	// suitable for authenticated encryption.
	GenerateContentKey() ([]byte, error)

	// GenerateSalt produces a 16-byte random salt for the password KDF.
	// The salt is not a secret; it is stored on the server in the clear.
	GenerateSalt() ([]byte, error)

	// Encrypt seals plaintext under key with AES-256-GCM, generating a
	// fresh random 96-bit IV per call. The IV must never be reused with
	// the same key; callers get a new one on every invocation.
	Encrypt(plaintext string, key []byte) (ciphertext, iv []byte, err error)

	// Decrypt opens ciphertext with key and iv. Any authentication
	// failure (tampered ciphertext, wrong key or IV) yields
	// ErrDecryptionFailed; partial plaintext is never returned.
	Decrypt(ciphertext, iv, key []byte) (string, error)

	// ExportKey serializes a key to its compact string form (standard
	// Base64 of the raw bytes) for embedding in a URL fragment.
	ExportKey(key []byte) string

	// ImportKey reverses ExportKey. Rejects material that does not decode
	// to a 256-bit key.
	ImportKey(encoded string) ([]byte, error)

	// DeriveKeyFromPassword stretches password into a 256-bit key with
	// PBKDF2-SHA256 at 100000 iterations. Deterministic for identical
	// password+salt pairs; this is what makes later decryption possible.
	// Empty passwords are rejected outright.
	DeriveKeyFromPassword(password string, salt []byte) ([]byte, error)

	// EncryptWithPassword runs the full password flow above and returns
	// the ciphertext together with the wrapped-key bundle.
	EncryptWithPassword(plaintext, password string) (models.ProtectedPayload, error)

	// DecryptWithPassword reverses EncryptWithPassword. Every failure mode
	// of the unwrap chain (wrong password, corrupted bundle) collapses
	// into the single ErrInvalidPassword sentinel so callers cannot build
	// a password oracle out of error detail.
	DecryptWithPassword(payload models.ProtectedPayload, password string) (string, error)
}
