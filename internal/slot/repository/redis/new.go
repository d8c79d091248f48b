package redis

import (
	"github.com/seolargo/skivori-case/internal/slot/repository"
	"github.com/seolargo/skivori-case/pkg/log"
	pkgRedis "github.com/seolargo/skivori-case/pkg/redis"
)

type implBalanceRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.BalanceRepository {
	return &implBalanceRepository{
		redis: redis,
		l:     l,
	}
}
