package ratesrv

import (
	"context"
	"time"

	pkgHTTP "github.com/seolargo/skivori-case/pkg/http"
)

// IRate defines the interface for the upstream exchange-rate provider.
// Implementations are safe for concurrent use.
type IRate interface {
	GetLatestRates(ctx context.Context, base string) (Rates, error)
}

// New creates a new exchange-rate client. Returns the interface.
func New(cfg RateConfig) IRate {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpCfg := pkgHTTP.DefaultConfig()
	httpCfg.Timeout = time.Duration(cfg.Timeout) * time.Second
	return &rateImpl{
		cfg:    cfg,
		client: pkgHTTP.NewClient(httpCfg),
	}
}
