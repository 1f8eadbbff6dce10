package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/pkg/document"

	"github.com/google/uuid"
)

const DownloadPath = "/api/briefing/v1/download/"

// IArtifactService is the server-side "save file" of the fallback path: the
// PDF is parked under a random token and fetched once by the browser.
type IArtifactService interface {
	Offer(ctx context.Context, artifact *document.Artifact) (string, error)
	Redeem(ctx context.Context, token string) (*document.Artifact, error)
}

type artifactService struct {
	repo    contract.ArtifactRepository
	baseURL string
	ttl     time.Duration
	logger  logger.ILogger
}

func NewArtifactService(repo contract.ArtifactRepository, baseURL string, ttl time.Duration, log logger.ILogger) IArtifactService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &artifactService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		logger:  log,
	}
}

func (s *artifactService) Offer(ctx context.Context, artifact *document.Artifact) (string, error) {
	token := uuid.NewString()
	if err := s.repo.Put(ctx, token, artifact, s.ttl); err != nil {
		return "", fmt.Errorf("failed to park artifact: %w", err)
	}

	s.logger.Debug("ArtifactService", "Artifact parked for download", map[string]interface{}{
		"file_name": artifact.FileName,
		"ttl":       s.ttl.String(),
	})
	return s.baseURL + DownloadPath + token, nil
}

func (s *artifactService) Redeem(ctx context.Context, token string) (*document.Artifact, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, contract.ErrArtifactNotFound
	}
	return s.repo.Take(ctx, token)
}
