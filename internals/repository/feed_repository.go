package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hhanova/component-cnb-exchange-rates/internals/adapter/cache"
	"github.com/hhanova/component-cnb-exchange-rates/internals/adapter/cnbapi"
)

// FeedRepository provides raw daily fixing text for one date. When latest
// is true the caller wants the most recently declared fixing instead of the
// fixing archived under that exact date.
type FeedRepository interface {
	GetDailyFeed(ctx context.Context, date time.Time, latest bool) (string, error)
}

type cachedFeedRepository struct {
	client cnbapi.FeedClient
	cache  cache.Cache
}

// NewCachedFeedRepository wraps the feed client with an optional cache;
// pass a nil cache to always hit the endpoint.
func NewCachedFeedRepository(client cnbapi.FeedClient, cache cache.Cache) FeedRepository {
	return &cachedFeedRepository{
		client: client,
		cache:  cache,
	}
}

func (r *cachedFeedRepository) GetDailyFeed(ctx context.Context, date time.Time, latest bool) (string, error) {
	// The latest fixing can still change during the day, so only archived
	// per-date feeds are served from and written to the cache.
	if r.cache != nil && !latest {
		if raw, found := r.cache.GetDailyFeed(date); found {
			return raw, nil
		}
	}

	raw, err := r.client.FetchDailyFeed(ctx, date, latest)
	if err != nil {
		return "", fmt.Errorf("failed to fetch daily feed: %w", err)
	}

	if r.cache != nil && !latest {
		r.cache.SetDailyFeed(date, raw)
	}

	return raw, nil
}
