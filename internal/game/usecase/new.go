package usecase

import (
	"github.com/seolargo/skivori-case/internal/game"
	"github.com/seolargo/skivori-case/internal/game/repository"
	"github.com/seolargo/skivori-case/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	cacheRepo repository.CacheRepository
	l         log.Logger
}

// New - Factory
func New(
	repo repository.PostgresRepository,
	cacheRepo repository.CacheRepository,
	l log.Logger,
) game.UseCase {
	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		l:         l,
	}
}
