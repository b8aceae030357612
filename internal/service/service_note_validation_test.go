package service_test

import (
	"testing"

	"github.com/MKhiriev/vaultnote/internal/mock"
	. "github.com/MKhiriev/vaultnote/internal/service"
	"github.com/MKhiriev/vaultnote/internal/validators"
	"github.com/MKhiriev/vaultnote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNoteValidationService_CreateNote(t *testing.T) {
	t.Run("valid request reaches the inner service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inner := mock.NewMockNoteService(ctrl)
		svc := NewNoteValidationService().Wrap(inner)

		req := models.CreateNoteRequest{
			Ciphertext: "Y2lwaGVydGV4dA==",
			IV:         "aXYtMTIzNDU2Nzg5MGFi",
		}
		inner.EXPECT().CreateNote(gomock.Any(), req).
			Return(models.CreateNoteResponse{ID: "note-1"}, nil)

		resp, err := svc.CreateNote(testCtx(), req)
		require.NoError(t, err)
		assert.Equal(t, "note-1", resp.ID)
	})

	t.Run("invalid request never reaches the inner service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No expectations: a call on the inner mock fails the test.
		inner := mock.NewMockNoteService(ctrl)
		svc := NewNoteValidationService().Wrap(inner)

		_, err := svc.CreateNote(testCtx(), models.CreateNoteRequest{IV: "aXYtMTIzNDU2Nzg5MGFi"})
		require.ErrorIs(t, err, validators.ErrEmptyCiphertext)
	})
}

func TestNoteValidationService_ReadNote_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockNoteService(ctrl)
	svc := NewNoteValidationService().Wrap(inner)

	_, err := svc.ReadNote(testCtx(), "  ")
	require.ErrorIs(t, err, validators.ErrEmptyNoteID)
}

func TestNoteValidationService_DestroyNote_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockNoteService(ctrl)
	svc := NewNoteValidationService().Wrap(inner)

	err := svc.DestroyNote(testCtx(), models.DeleteNoteRequest{Token: "token"})
	require.ErrorIs(t, err, validators.ErrEmptyNoteID)
}
