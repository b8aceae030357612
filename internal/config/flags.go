package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-ledger client ledger file path
//	-c/-config json file path with configs
//	-metadata-secret deployment metadata encryption secret
//	-ip-hash-salt salt for hashed client addresses
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-share-base-url public base URL for share links
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-requests note creations allowed per rate window
//	-rate-window rate-limit window (e.g., "1m")
//	-cleanup-interval retention sweep interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var ledgerPath string
	var jsonConfigPath string
	var metadataSecret string
	var ipHashSalt string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var shareBaseURL string
	var requestTimeout time.Duration
	var rateRequests int
	var rateWindow time.Duration
	var cleanupInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&ledgerPath, "ledger", "", "Client ledger file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&metadataSecret, "metadata-secret", "", "Metadata encryption secret")
	flag.StringVar(&ipHashSalt, "ip-hash-salt", "", "Salt for hashed client addresses")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&shareBaseURL, "share-base-url", "", "Public base URL for share links")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&rateRequests, "rate-requests", 0, "Note creations allowed per rate window")
	flag.DurationVar(&rateWindow, "rate-window", 0, "Rate-limit window (e.g., 1m)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Retention sweep interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			MetadataSecret: metadataSecret,
			IPHashSalt:     ipHashSalt,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			ShareBaseURL:   shareBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Ledger: Ledger{
				Path: ledgerPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit: RateLimit{
				Requests: rateRequests,
				Window:   rateWindow,
			},
		},
		Adapter:      Adapter{},
		Workers:      Workers{CleanupInterval: cleanupInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
