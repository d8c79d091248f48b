package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/seolargo/skivori-case/internal/conversion"
	"github.com/seolargo/skivori-case/pkg/log"
	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

// fakeRateSrv serves one canned snapshot per base currency.
type fakeRateSrv struct {
	snapshots map[string]ratesrv.Rates
	calls     int
	fail      bool
}

func (s *fakeRateSrv) GetLatestRates(_ context.Context, base string) (ratesrv.Rates, error) {
	s.calls++
	if s.fail {
		return ratesrv.Rates{}, ratesrv.ErrUpstream
	}
	rates, ok := s.snapshots[base]
	if !ok {
		return ratesrv.Rates{}, ratesrv.ErrUpstream
	}
	return rates, nil
}

// fakeRatesCache is an in-memory CacheRepository.
type fakeRatesCache struct {
	snapshots map[string]ratesrv.Rates
}

func newFakeRatesCache() *fakeRatesCache {
	return &fakeRatesCache{snapshots: map[string]ratesrv.Rates{}}
}

func (c *fakeRatesCache) GetRates(_ context.Context, base string) (ratesrv.Rates, error) {
	rates, ok := c.snapshots[base]
	if !ok {
		return ratesrv.Rates{}, errors.New("cache miss")
	}
	return rates, nil
}

func (c *fakeRatesCache) SaveRates(_ context.Context, base string, rates ratesrv.Rates) error {
	c.snapshots[base] = rates
	return nil
}

func usdSnapshot() ratesrv.Rates {
	return ratesrv.Rates{
		Base: "USD",
		Rates: map[string]float64{
			"EUR": 0.9,
			"GBP": 0.8,
		},
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts with the provider rate", func(t *testing.T) {
		srv := &fakeRateSrv{snapshots: map[string]ratesrv.Rates{"USD": usdSnapshot()}}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		output, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 10, From: "usd", To: "eur"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if output.Rate != 0.9 {
			t.Errorf("Rate mismatch: got %v, want 0.9", output.Rate)
		}
		if math.Abs(output.Converted-9) > 1e-9 {
			t.Errorf("Converted mismatch: got %v, want 9", output.Converted)
		}
		if output.From != "USD" || output.To != "EUR" {
			t.Errorf("Codes not normalized: %s -> %s", output.From, output.To)
		}
	})

	t.Run("identity conversion skips the provider", func(t *testing.T) {
		srv := &fakeRateSrv{}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		output, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 5, From: "EUR", To: "EUR"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if output.Rate != 1 || output.Converted != 5 {
			t.Errorf("Identity mismatch: rate %v, converted %v", output.Rate, output.Converted)
		}
		if srv.calls != 0 {
			t.Errorf("Provider called %d times, want 0", srv.calls)
		}
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		srv := &fakeRateSrv{snapshots: map[string]ratesrv.Rates{"USD": usdSnapshot()}}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		output, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 0, From: "USD", To: "EUR"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if output.Converted != 0 {
			t.Errorf("Converted mismatch: got %v, want 0", output.Converted)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		uc := New(&fakeRateSrv{}, newFakeRatesCache(), log.NewNop())

		_, err := uc.Convert(ctx, conversion.ConvertInput{Amount: -1, From: "USD", To: "EUR"})
		if !errors.Is(err, conversion.ErrInvalidAmount) {
			t.Fatalf("Expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("malformed currency code is rejected", func(t *testing.T) {
		uc := New(&fakeRateSrv{}, newFakeRatesCache(), log.NewNop())

		for _, code := range []string{"", "US", "USDT", "U1D"} {
			if _, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: code, To: "EUR"}); !errors.Is(err, conversion.ErrInvalidCurrency) {
				t.Errorf("Code %q: expected ErrInvalidCurrency, got %v", code, err)
			}
		}
	})

	t.Run("unknown target currency is not found", func(t *testing.T) {
		srv := &fakeRateSrv{snapshots: map[string]ratesrv.Rates{"USD": usdSnapshot()}}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		_, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: "USD", To: "XXX"})
		if !errors.Is(err, conversion.ErrCurrencyNotFound) {
			t.Fatalf("Expected ErrCurrencyNotFound, got %v", err)
		}
	})

	t.Run("upstream failure surfaces as rates unavailable", func(t *testing.T) {
		srv := &fakeRateSrv{fail: true}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		_, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: "USD", To: "EUR"})
		if !errors.Is(err, conversion.ErrRateUnavailable) {
			t.Fatalf("Expected ErrRateUnavailable, got %v", err)
		}
	})

	t.Run("snapshot is cached under the requested base even when the provider echoes another code", func(t *testing.T) {
		snapshot := usdSnapshot()
		snapshot.Base = "USD-CANONICAL"
		srv := &fakeRateSrv{snapshots: map[string]ratesrv.Rates{"USD": snapshot}}
		cache := newFakeRatesCache()
		uc := New(srv, cache, log.NewNop())

		if _, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: "USD", To: "EUR"}); err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if _, ok := cache.snapshots["USD"]; !ok {
			t.Fatal("Snapshot not cached under the requested base")
		}

		output, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: "USD", To: "EUR"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if !output.CacheHit {
			t.Error("Expected a cache hit on the second call")
		}
		if srv.calls != 1 {
			t.Errorf("Provider called %d times, want 1", srv.calls)
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		srv := &fakeRateSrv{snapshots: map[string]ratesrv.Rates{"USD": usdSnapshot()}}
		uc := New(srv, newFakeRatesCache(), log.NewNop())

		if _, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 1, From: "USD", To: "EUR"}); err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		output, err := uc.Convert(ctx, conversion.ConvertInput{Amount: 2, From: "USD", To: "GBP"})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if !output.CacheHit {
			t.Error("Expected a cache hit on the second call")
		}
		if srv.calls != 1 {
			t.Errorf("Provider called %d times, want 1", srv.calls)
		}
	})
}
