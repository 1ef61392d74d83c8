package content

import (
	"context"
	"fmt"
	"time"

	"eaglegym/internal/cache"
	"eaglegym/internal/logger"
	"eaglegym/internal/metrics"

	"github.com/google/uuid"
)

// CachedRepository serves FindByType from Redis when a fresh copy exists.
type CachedRepository struct {
	next  Repository
	cache *cache.Store
	ttl   time.Duration
}

func NewCachedRepository(next Repository, store *cache.Store, ttl time.Duration) Repository {
	if !store.Enabled() || ttl <= 0 {
		return next
	}
	return &CachedRepository{next: next, cache: store, ttl: ttl}
}

func cacheKey(branchID uuid.UUID, dataType DataType, opts FetchOptions) string {
	return fmt.Sprintf("branch_data:%s:%s:%s:%t:%d:%s",
		branchID, dataType, opts.OrderBy, opts.Descending, opts.Limit, opts.OfferType)
}

func (r *CachedRepository) FindByType(ctx context.Context, branchID uuid.UUID, dataType DataType, opts FetchOptions) ([]Record, error) {
	key := cacheKey(branchID, dataType, opts)

	var records []Record
	hit, err := r.cache.GetJSON(ctx, key, &records)
	if err != nil {
		logger.WithError(err).Warn("Branch data cache read failed", "key", key)
	}
	if hit {
		metrics.RecordCacheLookup("hit")
		return records, nil
	}
	metrics.RecordCacheLookup("miss")

	records, err = r.next.FindByType(ctx, branchID, dataType, opts)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, records, r.ttl); err != nil {
		logger.WithError(err).Warn("Branch data cache write failed", "key", key)
	}

	return records, nil
}
