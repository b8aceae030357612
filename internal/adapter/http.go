package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/utils"
	"github.com/MKhiriev/vaultnote/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// request returns a prepared resty request with the optional bearer token
// attached.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

// CreateNote implements [ServerAdapter]. It POSTs the sealed note to
// POST /api/notes and decodes the id and destroy token from the response.
func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.CreateNoteResponse, error) {
	var created models.CreateNoteResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.CreateNoteResponse{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateNoteResponse{}, err
	}

	return created, nil
}

// GetNote implements [ServerAdapter]. One call is one consumed read; the
// caller must be ready to decrypt what comes back because the server will
// not serve the same note twice once its counter runs out.
func (h *httpServerAdapter) GetNote(ctx context.Context, id string) (models.NoteResponse, error) {
	var note models.NoteResponse

	resp, err := h.request(ctx).
		SetResult(&note).
		Get("/api/notes/" + url.PathEscape(id))
	if err != nil {
		return models.NoteResponse{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteResponse{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. The destroy token travels in the
// request body, never in the URL.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteNoteRequest{Token: req.Token}).
		Delete("/api/notes/" + url.PathEscape(req.ID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Stats implements [ServerAdapter].
func (h *httpServerAdapter) Stats(ctx context.Context) (models.StatsResponse, error) {
	var stats models.StatsResponse

	resp, err := h.request(ctx).
		SetResult(&stats).
		Get("/api/notes/stats")
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatsResponse{}, err
	}

	return stats, nil
}

// ServerVersion implements [ServerAdapter]. The version endpoint answers
// plain text.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
