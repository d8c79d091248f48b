package redis

import (
	"github.com/seolargo/skivori-case/internal/conversion/repository"
	"github.com/seolargo/skivori-case/pkg/log"
	pkgRedis "github.com/seolargo/skivori-case/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
