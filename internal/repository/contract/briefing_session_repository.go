package contract

import (
	"github.com/annaddsgr/Portfolio/internal/entity"

	"github.com/google/uuid"
)

type BriefingSessionRepository interface {
	Save(session *entity.BriefingSession)
	Get(id uuid.UUID) (*entity.BriefingSession, bool)
	Touch(session *entity.BriefingSession)
	Delete(id uuid.UUID)
}
