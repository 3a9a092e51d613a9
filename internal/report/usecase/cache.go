package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"dashboard-srv/internal/report/repository"
)

// cached serves compute from the summary cache when one is configured.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, uc *implUseCase, kind string, params []string, compute func() (T, error)) (T, error) {
	if uc.cache == nil {
		return compute()
	}

	key := repository.SummaryKey{Fingerprint: uc.snap.Fingerprint(), Kind: kind, Params: params}
	data, err := uc.cache.GetSummary(ctx, key)
	if err == nil {
		var out T
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		uc.l.Warnf(ctx, "report.usecase.cached: discard undecodable %s entry", kind)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "report.usecase.cached: GetSummary %s: %v", kind, err)
	}

	out, err := compute()
	if err != nil {
		return out, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := uc.cache.SaveSummary(ctx, key, data); err != nil {
			uc.l.Warnf(ctx, "report.usecase.cached: SaveSummary %s: %v", kind, err)
		}
	}
	return out, nil
}
