package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultnote/internal/crypto"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/store"
	"github.com/MKhiriev/vaultnote/internal/utils"
	"github.com/MKhiriev/vaultnote/models"
)

// destroyTokenBytes is the entropy of the owner's deletion secret. Hex
// encoded, so the wire form is twice as long.
const destroyTokenBytes = 32

// anonymousAuthor is the display name served when a note was created
// without one.
const anonymousAuthor = "Anonymous"

// noteService implements [NoteService] over the PostgreSQL repository.
//
// Division of labour with the store layer: the repository owns atomicity
// (the consume CTE), this service owns policy — destroy-token comparison,
// terminal-note destruction, metadata-at-rest encryption.
type noteService struct {
	notes    store.NoteRepository
	metadata *crypto.MetadataCipher
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, metadata *crypto.MetadataCipher, logger *logger.Logger) NoteService {
	return &noteService{
		notes:    notes,
		metadata: metadata,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// CreateNote assembles the persistent note record from the request: server
// side it generates the id and destroy token, derives the expiry instant
// from the requested duration and encrypts the operator-readable metadata.
// The ciphertext and the key-wrap bundle pass through untouched.
func (s *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.CreateNoteResponse, error) {
	log := logger.FromContext(ctx)

	token, err := generateDestroyToken()
	if err != nil {
		log.Err(err).Str("func", "noteService.CreateNote").Msg("failed to generate destroy token")
		return models.CreateNoteResponse{}, err
	}

	note := models.Note{
		ID:                 s.ids.Generate(),
		Ciphertext:         req.Ciphertext,
		IV:                 req.IV,
		IsProtected:        req.IsProtected,
		EncryptedKey:       req.EncryptedKey,
		KeyIV:              req.KeyIV,
		Salt:               req.Salt,
		RemainingReads:     req.MaxReads,
		MaxViews:           req.MaxViews,
		DeleteAfterReading: req.DeleteAfterReading,
		DestroyToken:       token,
	}

	// anonymous by default; an authenticated caller gets the note pinned
	// to their account for later listing
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		note.UserID = &userID
	}

	if req.Duration != nil {
		expiresAt := time.Now().Add(time.Duration(*req.Duration) * time.Minute)
		note.ExpiresAt = &expiresAt
	}

	if note.TitleEncrypted, err = s.encryptOptional(req.Title); err != nil {
		return models.CreateNoteResponse{}, err
	}
	if note.AuthorNameEncrypted, err = s.encryptOptional(req.AuthorName); err != nil {
		return models.CreateNoteResponse{}, err
	}
	if note.AuthorEmailEncrypted, err = s.encryptOptional(req.AuthorEmail); err != nil {
		return models.CreateNoteResponse{}, err
	}
	if note.CategoryEncrypted, err = s.encryptOptional(req.Category); err != nil {
		return models.CreateNoteResponse{}, err
	}

	if len(req.Images) > 0 {
		encoded, marshalErr := json.Marshal(req.Images)
		if marshalErr != nil {
			log.Err(marshalErr).Str("func", "noteService.CreateNote").Msg("failed to encode image attachments")
			return models.CreateNoteResponse{}, fmt.Errorf("encode image attachments: %w", marshalErr)
		}
		images := string(encoded)
		note.Images = &images
	}

	saved, err := s.notes.CreateNote(ctx, note)
	if errors.Is(err, store.ErrNoteIDCollision) {
		// One retry with a fresh id covers the astronomically unlikely case.
		note.ID = s.ids.Generate()
		saved, err = s.notes.CreateNote(ctx, note)
	}
	if err != nil {
		return models.CreateNoteResponse{}, err
	}

	log.Info().
		Str("func", "noteService.CreateNote").
		Str("note_id", saved.ID).
		Bool("protected", saved.IsProtected).
		Bool("delete_after_reading", saved.DeleteAfterReading).
		Msg("note created")

	return models.CreateNoteResponse{
		ID:           saved.ID,
		DestroyToken: saved.DestroyToken,
	}, nil
}

// ReadNote serves one read. The repository's consume statement is the
// gatekeeper; this method reacts to its verdict. A note that just went
// terminal (and any unreadable leftover row) is destroyed before returning.
func (s *noteService) ReadNote(ctx context.Context, id string) (models.NoteResponse, error) {
	log := logger.FromContext(ctx)

	note, err := s.notes.ConsumeNote(ctx, id)
	if err != nil {
		// Expired and consumed rows linger pending the sweep; reclaim them
		// eagerly on touch, then report the original verdict.
		if errors.Is(err, store.ErrNoteExpired) || errors.Is(err, store.ErrNoteConsumed) {
			s.destroyQuietly(ctx, id)
		}
		return models.NoteResponse{}, err
	}

	// The counters already reflect this read; the derived retention policy
	// decides whether it was the note's last one.
	if models.RetentionOf(note).Terminal(time.Now()) {
		s.destroyQuietly(ctx, note.ID)
	}

	resp := models.NoteResponse{
		Ciphertext:            note.Ciphertext,
		IV:                    note.IV,
		RemainingReadsPreview: note.RemainingReads,
		IsProtected:           note.IsProtected,
		EncryptedKey:          note.EncryptedKey,
		KeyIV:                 note.KeyIV,
		Salt:                  note.Salt,
		CreatedAt:             note.CreatedAt,
		ExpiresAt:             note.ExpiresAt,
		ViewCount:             note.ViewCount,
		MaxViews:              note.MaxViews,
		DeleteAfterReading:    note.DeleteAfterReading,
	}

	resp.Title = s.decryptOptional(note.TitleEncrypted)
	resp.Category = s.decryptOptional(note.CategoryEncrypted)
	// A note created without an author name is presented as anonymous;
	// the email stays empty.
	resp.AuthorName = anonymousAuthor
	if note.AuthorNameEncrypted != nil {
		resp.AuthorName = s.metadata.DecryptField(*note.AuthorNameEncrypted)
	}
	if note.AuthorEmailEncrypted != nil {
		resp.AuthorEmail = s.metadata.DecryptField(*note.AuthorEmailEncrypted)
	}

	if note.Images != nil {
		if unmarshalErr := json.Unmarshal([]byte(*note.Images), &resp.Images); unmarshalErr != nil {
			// Attachments are decorative next to the body; a corrupted blob
			// must not block the sole read of a burn-after-reading note.
			log.Err(unmarshalErr).
				Str("func", "noteService.ReadNote").
				Str("note_id", note.ID).
				Msg("failed to decode image attachments")
			resp.Images = nil
		}
	}

	return resp, nil
}

// DestroyNote deletes a note on presentation of its destroy token.
func (s *noteService) DestroyNote(ctx context.Context, req models.DeleteNoteRequest) error {
	log := logger.FromContext(ctx)

	note, err := s.notes.GetNote(ctx, req.ID)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(note.DestroyToken), []byte(req.Token)) != 1 {
		log.Warn().
			Str("func", "noteService.DestroyNote").
			Str("note_id", req.ID).
			Msg("destroy token mismatch")
		return ErrInvalidDestroyToken
	}

	return s.notes.DeleteNote(ctx, req.ID)
}

// ListUserNotes serves the authenticated author's own notes. Metadata comes
// back decrypted because the listing belongs to the author; content and key
// columns never enter this path.
func (s *noteService) ListUserNotes(ctx context.Context) ([]models.NoteListItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoAuthenticatedUser
	}

	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.NoteListItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, models.NoteListItem{
			ID:                 note.ID,
			Title:              s.decryptOptional(note.TitleEncrypted),
			Category:           s.decryptOptional(note.CategoryEncrypted),
			IsProtected:        note.IsProtected,
			RemainingReads:     note.RemainingReads,
			ViewCount:          note.ViewCount,
			MaxViews:           note.MaxViews,
			DeleteAfterReading: note.DeleteAfterReading,
			ExpiresAt:          note.ExpiresAt,
			CreatedAt:          note.CreatedAt,
		})
	}

	return items, nil
}

func (s *noteService) Stats(ctx context.Context) (models.StatsResponse, error) {
	return s.notes.Stats(ctx)
}

func (s *noteService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.notes.DeleteExpired(ctx)
}

func (s *noteService) CleanupViewExhausted(ctx context.Context) (int64, error) {
	return s.notes.DeleteViewExhausted(ctx)
}

// destroyQuietly removes a row whose retention already decided its fate.
// Failure is logged, not surfaced: the sweep will catch the leftover.
func (s *noteService) destroyQuietly(ctx context.Context, id string) {
	if err := s.notes.DeleteNote(ctx, id); err != nil && !errors.Is(err, store.ErrNoteNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteService.destroyQuietly").
			Str("note_id", id).
			Msg("failed to remove terminal note, leaving it to the sweep")
	}
}

func (s *noteService) encryptOptional(field *string) (*string, error) {
	if field == nil {
		return nil, nil
	}

	encrypted, err := s.metadata.EncryptField(*field)
	if err != nil {
		return nil, err
	}
	return &encrypted, nil
}

func (s *noteService) decryptOptional(field *string) *string {
	if field == nil {
		return nil
	}

	decrypted := s.metadata.DecryptField(*field)
	return &decrypted
}

func generateDestroyToken() (string, error) {
	token := make([]byte, destroyTokenBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("generate destroy token: %w", err)
	}
	return hex.EncodeToString(token), nil
}
