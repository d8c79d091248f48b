package usecase

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/seolargo/skivori-case/internal/conversion"
	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Convert - Main conversion method
// Flow: validate → normalize codes → check cache → fetch upstream → look up rate → convert
func (uc *implUseCase) Convert(ctx context.Context, input conversion.ConvertInput) (conversion.ConvertOutput, error) {
	// Step 0: Validate input
	if input.Amount < 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return conversion.ConvertOutput{}, conversion.ErrInvalidAmount
	}
	if !currencyCodeRe.MatchString(input.From) || !currencyCodeRe.MatchString(input.To) {
		return conversion.ConvertOutput{}, conversion.ErrInvalidCurrency
	}

	from := strings.ToUpper(input.From)
	to := strings.ToUpper(input.To)

	output := conversion.ConvertOutput{
		Amount: input.Amount,
		From:   from,
		To:     to,
	}

	// Step 1: Identity conversion needs no rate table
	if from == to {
		output.Rate = 1
		output.Converted = input.Amount
		return output, nil
	}

	// Step 2: Resolve the rate snapshot (cache first, then upstream)
	rates, cacheHit, err := uc.resolveRates(ctx, from)
	if err != nil {
		return conversion.ConvertOutput{}, err
	}
	output.CacheHit = cacheHit

	// Step 3: Look up the target rate
	rate, ok := rates.Rates[to]
	if !ok {
		return conversion.ConvertOutput{}, conversion.ErrCurrencyNotFound
	}

	output.Rate = rate
	output.Converted = input.Amount * rate
	return output, nil
}

// resolveRates returns the rate snapshot for the base currency, preferring the
// cached copy. A fresh upstream snapshot is cached best effort.
func (uc *implUseCase) resolveRates(ctx context.Context, base string) (ratesrv.Rates, bool, error) {
	cached, cacheErr := uc.cacheRepo.GetRates(ctx, base)
	if cacheErr == nil && len(cached.Rates) > 0 {
		uc.l.Debugf(ctx, "conversion.usecase.Convert: cache hit for base %s", base)
		return cached, true, nil
	}

	fresh, err := uc.rateSrv.GetLatestRates(ctx, base)
	if err != nil {
		uc.l.Errorf(ctx, "conversion.usecase.Convert: upstream fetch failed: %v", err)
		return fresh, false, conversion.ErrRateUnavailable
	}

	if err := uc.cacheRepo.SaveRates(ctx, base, fresh); err != nil {
		uc.l.Warnf(ctx, "conversion.usecase.Convert: failed to cache rates: %v", err)
	}
	return fresh, false, nil
}
