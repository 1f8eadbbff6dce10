package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/pkg/document"

	"github.com/redis/go-redis/v9"
)

const artifactKeyPrefix = "briefing:artifact:"

type ArtifactRepositoryImpl struct {
	rdb *redis.Client
}

func NewArtifactRepository(rdb *redis.Client) contract.ArtifactRepository {
	return &ArtifactRepositoryImpl{rdb: rdb}
}

type storedArtifact struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
	Pages       int    `json:"pages"`
}

func (r *ArtifactRepositoryImpl) Put(ctx context.Context, token string, artifact *document.Artifact, ttl time.Duration) error {
	payload, err := json.Marshal(storedArtifact{
		FileName:    artifact.FileName,
		ContentType: artifact.ContentType,
		Data:        artifact.Data,
		Pages:       artifact.Pages,
	})
	if err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}

	return r.rdb.Set(ctx, artifactKeyPrefix+token, payload, ttl).Err()
}

func (r *ArtifactRepositoryImpl) Take(ctx context.Context, token string) (*document.Artifact, error) {
	raw, err := r.rdb.GetDel(ctx, artifactKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrArtifactNotFound
	}
	if err != nil {
		return nil, err
	}

	var stored storedArtifact
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	return &document.Artifact{
		FileName:    stored.FileName,
		ContentType: stored.ContentType,
		Data:        stored.Data,
		Pages:       stored.Pages,
	}, nil
}
