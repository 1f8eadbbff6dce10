package contract

import (
	"context"
	"errors"
	"time"

	"github.com/annaddsgr/Portfolio/pkg/document"
)

var ErrArtifactNotFound = errors.New("artifact not found or already downloaded")

// ArtifactRepository parks rendered PDFs between hand-off and download.
// Take is destructive: a token can be redeemed once.
type ArtifactRepository interface {
	Put(ctx context.Context, token string, artifact *document.Artifact, ttl time.Duration) error
	Take(ctx context.Context, token string) (*document.Artifact, error)
}
