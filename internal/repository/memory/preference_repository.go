package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// PreferenceRepository keeps visitor settings for the lifetime of the
// process, which is enough when no shared store is configured.
type PreferenceRepository struct {
	cache *cache.Cache
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *PreferenceRepository) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	if x, found := r.cache.Get(visitorID + ":" + key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, visitorID, key, value string) error {
	r.cache.Set(visitorID+":"+key, value, cache.NoExpiration)
	return nil
}
