// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vaultnote/internal/adapter"
	"github.com/MKhiriev/vaultnote/internal/crypto"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/store"
	"github.com/MKhiriev/vaultnote/internal/validators"
	"github.com/MKhiriev/vaultnote/models"
)

// minProtectionPasswordLength is an app-layer floor, deliberately separate
// from the KDF which accepts any non-empty password.
const minProtectionPasswordLength = 6

// clientNoteService orchestrates the zero-knowledge flows: local crypto,
// server transport and the sent-note ledger. The plaintext and the raw
// content key exist only inside these methods.
type clientNoteService struct {
	cipher crypto.CipherService
	server adapter.ServerAdapter
	ledger store.NoteLedger

	baseURL string

	logger *logger.Logger
}

func NewClientNoteService(cipher crypto.CipherService, server adapter.ServerAdapter, ledger store.NoteLedger, baseURL string, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		cipher:  cipher,
		server:  server,
		ledger:  ledger,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CreateNote implements [ClientNoteService].
func (c *clientNoteService) CreateNote(ctx context.Context, params CreateNoteParams) (models.ShareLink, models.SentNote, error) {
	if err := validators.ValidateContent(params.Content); err != nil {
		return models.ShareLink{}, models.SentNote{}, err
	}

	req := models.CreateNoteRequest{
		Title:              params.Title,
		AuthorName:         params.AuthorName,
		AuthorEmail:        params.AuthorEmail,
		Category:           params.Category,
		MaxReads:           params.MaxReads,
		MaxViews:           params.MaxViews,
		Duration:           params.Duration,
		DeleteAfterReading: params.DeleteAfterReading,
	}

	var fragment string

	if params.Password != "" {
		if len(params.Password) < minProtectionPasswordLength {
			return models.ShareLink{}, models.SentNote{}, ErrPasswordTooShort
		}

		payload, err := c.cipher.EncryptWithPassword(params.Content, params.Password)
		if err != nil {
			return models.ShareLink{}, models.SentNote{}, fmt.Errorf("encrypt note under password: %w", err)
		}

		encKey := base64.StdEncoding.EncodeToString(payload.EncryptedKey)
		keyIV := base64.StdEncoding.EncodeToString(payload.KeyIV)
		salt := base64.StdEncoding.EncodeToString(payload.Salt)

		req.Ciphertext = base64.StdEncoding.EncodeToString(payload.Ciphertext)
		req.IV = base64.StdEncoding.EncodeToString(payload.IV)
		req.IsProtected = true
		req.EncryptedKey = &encKey
		req.KeyIV = &keyIV
		req.Salt = &salt
	} else {
		key, err := c.cipher.GenerateContentKey()
		if err != nil {
			return models.ShareLink{}, models.SentNote{}, fmt.Errorf("generate content key: %w", err)
		}

		ciphertext, iv, err := c.cipher.Encrypt(params.Content, key)
		if err != nil {
			return models.ShareLink{}, models.SentNote{}, fmt.Errorf("encrypt note: %w", err)
		}

		req.Ciphertext = base64.StdEncoding.EncodeToString(ciphertext)
		req.IV = base64.StdEncoding.EncodeToString(iv)

		// the only copy of the key outside this function
		fragment = c.cipher.ExportKey(key)
	}

	created, err := c.server.CreateNote(ctx, req)
	if err != nil {
		return models.ShareLink{}, models.SentNote{}, c.mapAdapterError(err)
	}

	link := models.ShareLink{BaseURL: c.baseURL, NoteID: created.ID, Key: fragment}

	sent := models.SentNote{
		NoteID:       created.ID,
		URL:          link.String(),
		DestroyToken: created.DestroyToken,
		CreatedAt:    time.Now(),
	}
	if sent, err = c.ledger.Record(ctx, sent); err != nil {
		// the note exists on the server; losing the ledger row only loses
		// the early-burn ability, surface it as a warning instead
		c.logger.Err(err).Str("func", "clientNoteService.CreateNote").Str("note_id", created.ID).Msg("failed to record sent note in ledger")
	}

	return link, sent, nil
}

// ReadNote implements [ClientNoteService].
func (c *clientNoteService) ReadNote(ctx context.Context, target, password string) (ReadNoteResult, error) {
	id, fragment := resolveTarget(target)
	if id == "" {
		return ReadNoteResult{}, models.ErrMalformedShareLink
	}

	note, err := c.server.GetNote(ctx, id)
	if err != nil {
		return ReadNoteResult{}, c.mapAdapterError(err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(note.Ciphertext)
	if err != nil {
		return ReadNoteResult{}, fmt.Errorf("decode ciphertext: %w", err)
	}
	iv, err := base64.StdEncoding.DecodeString(note.IV)
	if err != nil {
		return ReadNoteResult{}, fmt.Errorf("decode iv: %w", err)
	}

	var content string
	if note.IsProtected {
		content, err = c.decryptProtected(note, ciphertext, iv, password)
	} else {
		content, err = c.decryptWithFragment(ciphertext, iv, fragment)
	}
	if err != nil {
		return ReadNoteResult{}, err
	}

	return ReadNoteResult{Content: content, Note: note}, nil
}

func (c *clientNoteService) decryptProtected(note models.NoteResponse, ciphertext, iv []byte, password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if note.EncryptedKey == nil || note.KeyIV == nil || note.Salt == nil {
		return "", crypto.ErrInvalidPassword
	}

	encKey, err := base64.StdEncoding.DecodeString(*note.EncryptedKey)
	if err != nil {
		return "", fmt.Errorf("decode wrapped key: %w", err)
	}
	keyIV, err := base64.StdEncoding.DecodeString(*note.KeyIV)
	if err != nil {
		return "", fmt.Errorf("decode key iv: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(*note.Salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}

	return c.cipher.DecryptWithPassword(models.ProtectedPayload{
		Ciphertext:   ciphertext,
		IV:           iv,
		Salt:         salt,
		EncryptedKey: encKey,
		KeyIV:        keyIV,
	}, password)
}

func (c *clientNoteService) decryptWithFragment(ciphertext, iv []byte, fragment string) (string, error) {
	if fragment == "" {
		return "", ErrMissingFragmentKey
	}

	key, err := c.cipher.ImportKey(fragment)
	if err != nil {
		return "", err
	}

	return c.cipher.Decrypt(ciphertext, iv, key)
}

// BurnNote implements [ClientNoteService].
func (c *clientNoteService) BurnNote(ctx context.Context, noteID, token string) error {
	if token == "" {
		sent, err := c.ledger.Find(ctx, noteID)
		if err != nil {
			return err
		}
		token = sent.DestroyToken
	}

	if err := c.server.DeleteNote(ctx, models.DeleteNoteRequest{ID: noteID, Token: token}); err != nil {
		return c.mapAdapterError(err)
	}

	if err := c.ledger.Forget(ctx, noteID); err != nil && !errors.Is(err, store.ErrSentNoteNotFound) {
		c.logger.Err(err).Str("func", "clientNoteService.BurnNote").Str("note_id", noteID).Msg("failed to forget burned note")
	}

	return nil
}

// ListSent implements [ClientNoteService].
func (c *clientNoteService) ListSent(ctx context.Context) ([]models.SentNote, error) {
	return c.ledger.List(ctx)
}

// Stats implements [ClientNoteService].
func (c *clientNoteService) Stats(ctx context.Context) (models.StatsResponse, error) {
	stats, err := c.server.Stats(ctx)
	if err != nil {
		return models.StatsResponse{}, c.mapAdapterError(err)
	}
	return stats, nil
}

// ServerVersion implements [ClientNoteService].
func (c *clientNoteService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.server.ServerVersion(ctx)
	if err != nil {
		return "", c.mapAdapterError(err)
	}
	return version, nil
}

// resolveTarget accepts either a full share link or a bare note id and
// returns the id plus the fragment key, when one is present. Pure string
// work; the fragment never leaves the process.
func resolveTarget(target string) (id, fragment string) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", ""
	}

	if strings.Contains(target, "/") {
		link, err := models.ParseShareLink(target)
		if err != nil {
			return "", ""
		}
		return link.NoteID, link.Key
	}

	// a bare id may still carry a fragment pasted along with it
	if idx := strings.IndexByte(target, '#'); idx != -1 {
		return target[:idx], target[idx+1:]
	}
	return target, ""
}
