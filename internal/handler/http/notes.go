package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vaultnote/internal/app"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/utils"
	"github.com/MKhiriev/vaultnote/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.NoteService.CreateNote(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) readNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	resp, err := h.services.NoteService.ReadNote(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.readNote").Str("note_id", id).Msg("error reading note")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) destroyNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req := models.DeleteNoteRequest{
		ID:    chi.URLParam(r, "id"),
		Token: r.URL.Query().Get("token"),
	}

	// the body form wins over the query form; an absent token stays absent
	// and the comparison fails closed
	if r.Body != nil {
		var body models.DeleteNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Token != "" {
			req.Token = body.Token
		}
	}

	if err := h.services.NoteService.DestroyNote(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.destroyNote").Str("note_id", req.ID).Msg("error destroying note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.NoteService.ListUserNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.services.NoteService.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.stats").Msg("error aggregating stats")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// writeError translates a service error into its HTTP status and a safe
// public message. Internal detail stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	status, msg := mapError(err)
	http.Error(w, msg, status)
}
