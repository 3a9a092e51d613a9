package redis

import (
	"time"

	"dashboard-srv/internal/report/repository"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"
)

const defaultTTL = 10 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
