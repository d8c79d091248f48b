package ratesrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/seolargo/skivori-case/pkg/sanitize"
)

// ErrUpstream is returned when the provider responds with a non-200 status or
// an unusable body.
var ErrUpstream = errors.New("ratesrv: upstream rate provider failed")

// rateDefaults is the template the raw provider payload is reconciled
// against. The provider is external and its payload is not under our control;
// sanitizing guarantees every field read below exists. The rates table is a
// nil leaf, not an empty-map template: a mapping template would impose its own
// (empty) key-set and erase the table.
func rateDefaults(base string) map[string]any {
	return map[string]any{
		"result":    "error",
		"base_code": base,
		"rates":     nil,
	}
}

// GetLatestRates fetches the latest rates snapshot for the given base currency.
func (r *rateImpl) GetLatestRates(ctx context.Context, base string) (Rates, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	url := fmt.Sprintf("%s/latest/%s", r.cfg.BaseURL, base)

	body, status, err := r.client.Get(ctx, url, nil)
	if err != nil {
		return Rates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if status != http.StatusOK {
		return Rates{}, fmt.Errorf("%w: status %d", ErrUpstream, status)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Rates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	payload := sanitize.Sanitize(raw, rateDefaults(base)).(map[string]any)
	if payload["result"] != "success" {
		return Rates{}, fmt.Errorf("%w: result %v", ErrUpstream, payload["result"])
	}

	rates := make(map[string]float64)
	if rawRates, ok := payload["rates"].(map[string]any); ok {
		for code, v := range rawRates {
			if f, ok := v.(float64); ok {
				rates[strings.ToUpper(code)] = f
			}
		}
	}
	if len(rates) == 0 {
		return Rates{}, fmt.Errorf("%w: empty rate table", ErrUpstream)
	}

	baseCode, _ := payload["base_code"].(string)
	return Rates{Base: baseCode, Rates: rates}, nil
}
