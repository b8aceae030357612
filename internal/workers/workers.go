package workers

import (
	"context"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the server runs. Currently
// that is the retention sweep; new workers are appended here.
func NewWorkers(ctx context.Context, services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newCleanupWorker(ctx, services.NoteService, cfg.CleanupInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
