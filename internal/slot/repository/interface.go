package repository

import "context"

// BalanceRepository stores per-session coin balances.
type BalanceRepository interface {
	GetBalance(ctx context.Context, sessionID string) (int64, error)
	SetBalance(ctx context.Context, sessionID string, balance int64) error
	IncrBalance(ctx context.Context, sessionID string, delta int64) (int64, error)
}
