package models

// ProtectedPayload is the client-side result of encrypting a note under a
// password: the note ciphertext plus the wrapped content key. Raw binary
// here; Base64 encoding happens at the transport boundary.
//
// The raw content key and the password never appear in this structure.
type ProtectedPayload struct {
	// Ciphertext and IV encrypt the note body under the random content key.
	Ciphertext []byte
	IV         []byte

	// Salt is the 16-byte random salt fed to the password KDF.
	Salt []byte

	// EncryptedKey is the exported content-key string encrypted under the
	// password-derived key with KeyIV.
	EncryptedKey []byte
	KeyIV        []byte
}
