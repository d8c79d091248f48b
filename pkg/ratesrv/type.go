package ratesrv

import (
	pkgHTTP "github.com/seolargo/skivori-case/pkg/http"
)

// RateConfig is the configuration for the exchange-rate provider.
type RateConfig struct {
	BaseURL string
	Timeout int // in seconds
}

// Rates is one snapshot of exchange rates relative to a base currency.
type Rates struct {
	Base  string
	Rates map[string]float64
}

// rateImpl implements IRate on top of the shared HTTP client.
type rateImpl struct {
	cfg    RateConfig
	client pkgHTTP.IClient
}
