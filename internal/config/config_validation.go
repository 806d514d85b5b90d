package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Hard defaults applied after all sources have been merged. Only zero-valued
// fields are touched, so any explicit setting wins.
const (
	defaultBaseURL         = "http://localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = 5 * time.Minute
	defaultKeystorePath    = "societyhub.db"
)

func applyDefaults(cfg *StructuredConfig) {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultKeystorePath
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the client relies on at startup.
func (cfg *StructuredConfig) validate() error {
	raw := strings.TrimSpace(cfg.Adapter.BaseURL)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	cfg.Adapter.BaseURL = strings.TrimRight(u.String(), "/")

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", ErrInvalidWorkerConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
