package usecase

import (
	"github.com/seolargo/skivori-case/internal/conversion"
	"github.com/seolargo/skivori-case/internal/conversion/repository"
	"github.com/seolargo/skivori-case/pkg/log"
	"github.com/seolargo/skivori-case/pkg/ratesrv"
)

type implUseCase struct {
	rateSrv   ratesrv.IRate
	cacheRepo repository.CacheRepository
	l         log.Logger
}

// New - Factory
func New(
	rateSrv ratesrv.IRate,
	cacheRepo repository.CacheRepository,
	l log.Logger,
) conversion.UseCase {
	return &implUseCase{
		rateSrv:   rateSrv,
		cacheRepo: cacheRepo,
		l:         l,
	}
}
