package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vaultnote/internal/validators"
	"github.com/MKhiriev/vaultnote/models"
)

// NoteValidationService decorates a [NoteService] with request validation so
// the inner service only ever sees structurally sound input.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

// Wrap implements [NoteServiceWrapper].
func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	return &NoteValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.CreateNoteResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.CreateNoteResponse{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.CreateNote(ctx, req)
}

func (v *NoteValidationService) ReadNote(ctx context.Context, id string) (models.NoteResponse, error) {
	if strings.TrimSpace(id) == "" {
		return models.NoteResponse{}, validators.ErrEmptyNoteID
	}

	return v.inner.ReadNote(ctx, id)
}

func (v *NoteValidationService) DestroyNote(ctx context.Context, req models.DeleteNoteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during delete request validation: %w", err)
	}

	return v.inner.DestroyNote(ctx, req)
}

func (v *NoteValidationService) ListUserNotes(ctx context.Context) ([]models.NoteListItem, error) {
	return v.inner.ListUserNotes(ctx)
}

func (v *NoteValidationService) Stats(ctx context.Context) (models.StatsResponse, error) {
	return v.inner.Stats(ctx)
}

func (v *NoteValidationService) CleanupExpired(ctx context.Context) (int64, error) {
	return v.inner.CleanupExpired(ctx)
}

func (v *NoteValidationService) CleanupViewExhausted(ctx context.Context) (int64, error) {
	return v.inner.CleanupViewExhausted(ctx)
}
