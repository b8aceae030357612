package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateContentKey_LengthAndRandomness(t *testing.T) {
	svc := NewCipherService()

	k1, err := svc.GenerateContentKey()
	if err != nil {
		t.Fatalf("GenerateContentKey error: %v", err)
	}
	k2, err := svc.GenerateContentKey()
	if err != nil {
		t.Fatalf("GenerateContentKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if len(k2) != 32 {
		t.Fatalf("key length = %d, want 32", len(k2))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewCipherService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewCipherService()

	key, err := svc.GenerateContentKey()
	if err != nil {
		t.Fatalf("GenerateContentKey error: %v", err)
	}

	plaintexts := []string{
		"hello world",
		"",
		"многострочный\nтекст",
		string(bytes.Repeat([]byte{0x00, 0xFF}, 4096)),
	}

	for _, plaintext := range plaintexts {
		ciphertext, iv, encErr := svc.Encrypt(plaintext, key)
		if encErr != nil {
			t.Fatalf("Encrypt error: %v", encErr)
		}
		if len(iv) != 12 {
			t.Fatalf("iv length = %d, want 12", len(iv))
		}

		got, decErr := svc.Decrypt(ciphertext, iv, key)
		if decErr != nil {
			t.Fatalf("Decrypt error: %v", decErr)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(plaintext))
		}
	}
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	svc := NewCipherService()

	key, err := svc.GenerateContentKey()
	if err != nil {
		t.Fatalf("GenerateContentKey error: %v", err)
	}

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		_, iv, encErr := svc.Encrypt("same plaintext", key)
		if encErr != nil {
			t.Fatalf("Encrypt error: %v", encErr)
		}
		if _, dup := seen[string(iv)]; dup {
			t.Fatalf("IV collision after %d encryptions", i+1)
		}
		seen[string(iv)] = struct{}{}
	}
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	svc := NewCipherService()

	key, _ := svc.GenerateContentKey()
	ciphertext, iv, err := svc.Encrypt("authentic content", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	ciphertext[0] ^= 0x01

	if _, err := svc.Decrypt(ciphertext, iv, key); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed for tampered ciphertext, got %v", err)
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	svc := NewCipherService()

	key, _ := svc.GenerateContentKey()
	otherKey, _ := svc.GenerateContentKey()

	ciphertext, iv, err := svc.Encrypt("secret", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(ciphertext, iv, otherKey); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed for wrong key, got %v", err)
	}
}

func TestDecrypt_WrongIVFails(t *testing.T) {
	svc := NewCipherService()

	key, _ := svc.GenerateContentKey()
	ciphertext, iv, err := svc.Encrypt("secret", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	wrongIV := make([]byte, len(iv))
	copy(wrongIV, iv)
	wrongIV[0] ^= 0xFF

	if _, err := svc.Decrypt(ciphertext, wrongIV, key); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed for wrong IV, got %v", err)
	}
}

func TestExportImportKey_RoundTrip(t *testing.T) {
	svc := NewCipherService()

	key, err := svc.GenerateContentKey()
	if err != nil {
		t.Fatalf("GenerateContentKey error: %v", err)
	}

	exported := svc.ExportKey(key)
	if exported == "" {
		t.Fatalf("ExportKey returned empty string")
	}

	imported, err := svc.ImportKey(exported)
	if err != nil {
		t.Fatalf("ImportKey error: %v", err)
	}
	if !bytes.Equal(key, imported) {
		t.Fatalf("imported key does not match original")
	}
}

func TestImportKey_RejectsInvalidMaterial(t *testing.T) {
	svc := NewCipherService()

	tests := []string{
		"not base64!!!",
		"c2hvcnQ=",
		"",
	}

	for _, encoded := range tests {
		if _, err := svc.ImportKey(encoded); !errors.Is(err, ErrInvalidKeySize) {
			t.Fatalf("ImportKey(%q): expected ErrInvalidKeySize, got %v", encoded, err)
		}
	}
}
