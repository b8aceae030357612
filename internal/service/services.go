package service

import (
	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/crypto"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/store"
)

type Services struct {
	NoteService    NoteService
	RateLimiter    RateLimiter
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	metadata, err := crypto.NewMetadataCipher(cfg.App.MetadataSecret)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	notes := NewNoteValidationService().
		Wrap(NewNoteService(storages.NoteRepository, metadata, logger))

	return &Services{
		NoteService:    notes,
		RateLimiter:    NewRateLimiter(storages.RateLimitRepository, cfg.Server.RateLimit, logger),
		AppInfoService: appInfo,
	}, nil
}
