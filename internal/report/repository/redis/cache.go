package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"dashboard-srv/internal/report/repository"
	pkgRedis "dashboard-srv/pkg/redis"
)

const keyPrefix = "dashboard:summary"

// cacheKey builds "dashboard:summary:{fingerprint}:{kind}:{params hash}".
func cacheKey(key repository.SummaryKey) string {
	sum := sha1.Sum([]byte(strings.Join(key.Params, "\x1f")))
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, key.Fingerprint, key.Kind, hex.EncodeToString(sum[:8]))
}

func (r *implCacheRepository) GetSummary(ctx context.Context, key repository.SummaryKey) ([]byte, error) {
	data, err := r.redis.Get(ctx, cacheKey(key))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "report.repository.redis.GetSummary: Failed to read cache: %v", err)
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveSummary(ctx context.Context, key repository.SummaryKey, data []byte) error {
	if err := r.redis.Set(ctx, cacheKey(key), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SaveSummary: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
