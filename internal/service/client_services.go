package service

import (
	"github.com/MKhiriev/vaultnote/internal/adapter"
	"github.com/MKhiriev/vaultnote/internal/crypto"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/store"
)

type ClientServices struct {
	CipherService crypto.CipherService
	NoteService   ClientNoteService
}

func NewClientServices(ledger store.NoteLedger, serverAdapter adapter.ServerAdapter, baseURL string, logger *logger.Logger) *ClientServices {
	cipherSvc := crypto.NewCipherService()

	return &ClientServices{
		CipherService: cipherSvc,
		NoteService:   NewClientNoteService(cipherSvc, serverAdapter, ledger, baseURL, logger),
	}
}
