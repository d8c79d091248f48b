package game

import "context"

// UseCase is the game catalog domain interface.
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Refresh(ctx context.Context) error
}
