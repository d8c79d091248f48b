package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

// Rate snapshots change daily upstream; one hour keeps conversions fresh
// without hammering the provider.
const ratesTTL = time.Hour

func ratesKey(base string) string {
	return fmt.Sprintf("rates:%s", base)
}

func (r *implCacheRepository) GetRates(ctx context.Context, base string) (ratesrv.Rates, error) {
	data, err := r.redis.GetClient().Get(ctx, ratesKey(base)).Result()
	if err != nil {
		return ratesrv.Rates{}, err
	}
	var rates ratesrv.Rates
	if err := json.Unmarshal([]byte(data), &rates); err != nil {
		r.l.Errorf(ctx, "conversion.repository.redis.GetRates: Failed to unmarshal rates: %v", err)
		return ratesrv.Rates{}, err
	}
	return rates, nil
}

func (r *implCacheRepository) SaveRates(ctx context.Context, base string, rates ratesrv.Rates) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, ratesKey(base), data, ratesTTL).Err(); err != nil {
		r.l.Errorf(ctx, "conversion.repository.redis.SaveRates: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
