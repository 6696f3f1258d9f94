package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akordowski/auphonic-go/pkg/auphonic"
	"github.com/akordowski/auphonic-go/pkg/config"
	"go.uber.org/zap"
)

var errNoUserCredentials = errors.New("no user credentials configured: set AUPHONIC_ACCESS_TOKEN or AUPHONIC_USERNAME and AUPHONIC_PASSWORD")

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// newClient builds a client without a session. The returned func closes the
// transcript file, if one was opened.
func newClient(cfg *config.Config) (*auphonic.Client, func(), error) {
	var hooks auphonic.Hooks
	closeTranscript := func() {}

	path := transcriptPath
	if path == "" {
		path = cfg.TranscriptPath
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open transcript: %w", err)
		}
		hooks = auphonic.NewTranscriptHooks(f)
		closeTranscript = func() {
			if err := f.Close(); err != nil {
				logger.Warn("Failed to close transcript", zap.String("path", path), zap.Error(err))
			}
		}
	}

	opts := []auphonic.ClientOption{
		auphonic.WithLogger(logger),
		auphonic.WithTimeout(cfg.Timeout),
		auphonic.WithHooks(hooks),
	}
	if httpClient != nil {
		opts = append(opts, auphonic.WithHTTPClient(httpClient))
	}

	client, err := auphonic.New(cfg.ClientID, cfg.ClientSecret, opts...)
	if err != nil {
		closeTranscript()
		return nil, nil, err
	}
	return client, closeTranscript, nil
}

// openSession returns a client with a session, started from the configured
// access token or else by the password grant.
func openSession(ctx context.Context) (*auphonic.Client, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, closeTranscript, err := newClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case cfg.HasAccessToken():
		err = client.Authenticate(cfg.AccessToken)
	case cfg.HasUserCredentials():
		_, err = client.AuthenticateWithPassword(ctx, cfg.Username, cfg.Password)
	default:
		err = errNoUserCredentials
	}
	if err != nil {
		closeTranscript()
		return nil, nil, err
	}
	return client, closeTranscript, nil
}

// openPublic returns a client for the public endpoints.
func openPublic() (*auphonic.Client, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return newClient(cfg)
}
