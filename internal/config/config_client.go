package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ShareBaseURL is the base URL used when composing share links locally.
	// Usually matches the server's public address.
	ShareBaseURL string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the vaultnote server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientLedger contains local ledger settings for the client.
type ClientLedger struct {
	// Path is the SQLite file holding sent notes and destroy tokens.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Ledger holds local sent-note ledger settings.
	Ledger ClientLedger
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ShareBaseURL: cfg.App.ShareBaseURL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Ledger: ClientLedger{
				Path: cfg.Storage.Ledger.Path,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
