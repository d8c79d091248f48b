package slot

import "context"

// UseCase is the slot machine domain interface.
type UseCase interface {
	Spin(ctx context.Context, input SpinInput) (SpinOutput, error)
	Reset(ctx context.Context, sessionID string) (ResetOutput, error)
	Balance(ctx context.Context, sessionID string) (BalanceOutput, error)
}
