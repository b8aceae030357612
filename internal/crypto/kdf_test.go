package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKeyFromPassword_DeterministicForSameInputs(t *testing.T) {
	svc := NewCipherService()

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := svc.DeriveKeyFromPassword(password, salt)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}
	k2, err := svc.DeriveKeyFromPassword(password, salt)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("derived key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected derived keys to match for same password+salt")
	}
}

func TestDeriveKeyFromPassword_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewCipherService()

	password := "same password"
	salt1 := bytes.Repeat([]byte{0x01}, 16)
	salt2 := bytes.Repeat([]byte{0x02}, 16)

	k1, err := svc.DeriveKeyFromPassword(password, salt1)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}
	k2, err := svc.DeriveKeyFromPassword(password, salt2)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKeyFromPassword_DifferentPasswordProducesDifferentKey(t *testing.T) {
	svc := NewCipherService()

	salt := bytes.Repeat([]byte{0x7F}, 16)

	k1, err := svc.DeriveKeyFromPassword("password one", salt)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}
	k2, err := svc.DeriveKeyFromPassword("password two", salt)
	if err != nil {
		t.Fatalf("DeriveKeyFromPassword error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDeriveKeyFromPassword_RejectsEmptyPassword(t *testing.T) {
	svc := NewCipherService()

	salt := bytes.Repeat([]byte{0x01}, 16)
	if _, err := svc.DeriveKeyFromPassword("", salt); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestDeriveKeyFromPassword_RejectsBadSalt(t *testing.T) {
	svc := NewCipherService()

	for _, salt := range [][]byte{nil, {}, bytes.Repeat([]byte{0x01}, 8), bytes.Repeat([]byte{0x01}, 32)} {
		if _, err := svc.DeriveKeyFromPassword("password", salt); !errors.Is(err, ErrInvalidSalt) {
			t.Fatalf("salt len %d: expected ErrInvalidSalt, got %v", len(salt), err)
		}
	}
}
