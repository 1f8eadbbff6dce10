package memory

import (
	"context"
	"sync"
	"time"

	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/pkg/document"

	"github.com/patrickmn/go-cache"
)

type ArtifactRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewArtifactRepository() *ArtifactRepository {
	return &ArtifactRepository{
		cache: cache.New(10*time.Minute, time.Minute),
	}
}

func (r *ArtifactRepository) Put(ctx context.Context, token string, artifact *document.Artifact, ttl time.Duration) error {
	r.cache.Set(token, artifact, ttl)
	return nil
}

func (r *ArtifactRepository) Take(ctx context.Context, token string) (*document.Artifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(token)
	if !found {
		return nil, contract.ErrArtifactNotFound
	}
	r.cache.Delete(token)
	return x.(*document.Artifact), nil
}
