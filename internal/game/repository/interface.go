package repository

import (
	"context"

	"github.com/seolargo/skivori-case/internal/model"
)

// PostgresRepository reads the game catalog.
type PostgresRepository interface {
	ListGames(ctx context.Context, opts ListGamesOptions) ([]*model.Game, error)
	CountGames(ctx context.Context, opts CountGamesOptions) (int64, error)
}

// CacheRepository caches rendered catalog pages.
type CacheRepository interface {
	GetGameList(ctx context.Context, cacheKey string) ([]byte, error)
	SaveGameList(ctx context.Context, cacheKey string, data []byte) error
	InvalidateGameList(ctx context.Context) error
}
