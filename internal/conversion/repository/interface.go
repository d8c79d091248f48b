package repository

import (
	"context"

	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

// CacheRepository caches upstream rate snapshots per base currency. Both
// operations key on the normalized request base, not on whatever base code the
// provider echoes back, so saves and reads can never diverge.
type CacheRepository interface {
	GetRates(ctx context.Context, base string) (ratesrv.Rates, error)
	SaveRates(ctx context.Context, base string, rates ratesrv.Rates) error
}
