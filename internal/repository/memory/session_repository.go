package memory

import (
	"time"

	"github.com/annaddsgr/Portfolio/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps briefing sessions for ttl after their last
// touch. Expired sessions are purged every ttl/6.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, ttl/6)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.BriefingSession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(id uuid.UUID) (*entity.BriefingSession, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.BriefingSession), true
	}
	return nil, false
}

// Touch pushes the expiry forward.
func (r *SessionRepository) Touch(session *entity.BriefingSession) {
	r.Save(session)
}

func (r *SessionRepository) Delete(id uuid.UUID) {
	r.cache.Delete(id.String())
}
