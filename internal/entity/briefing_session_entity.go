package entity

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/google/uuid"
)

// BriefingSession is one visitor's pass through the form. It lives only in
// the session cache and is never written to a database.
type BriefingSession struct {
	Id        uuid.UUID
	Locale    i18n.Locale
	CreatedAt time.Time

	mu         sync.Mutex
	form       *briefing.Form
	updatedAt  time.Time
	submitting atomic.Bool
}

func NewBriefingSession(id uuid.UUID, locale i18n.Locale, now time.Time) *BriefingSession {
	return &BriefingSession{
		Id:        id,
		Locale:    locale,
		CreatedAt: now,
		form:      briefing.NewForm(),
		updatedAt: now,
	}
}

// Snapshot is a consistent copy of the form taken under the session lock.
type BriefingSnapshot struct {
	Step       int
	Answers    briefing.Answers
	CanAdvance bool
	CanRetreat bool
	CanSubmit  bool
	Submitting bool
	UpdatedAt  time.Time
}

func (s *BriefingSession) Snapshot() BriefingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Mutate runs fn with exclusive access to the form and returns the state
// right after it.
func (s *BriefingSession) Mutate(now time.Time, fn func(f *briefing.Form)) BriefingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.form)
	s.updatedAt = now
	return s.snapshotLocked()
}

func (s *BriefingSession) snapshotLocked() BriefingSnapshot {
	return BriefingSnapshot{
		Step:       s.form.Step(),
		Answers:    s.form.Answers(),
		CanAdvance: s.form.CanAdvance(),
		CanRetreat: s.form.CanRetreat(),
		CanSubmit:  s.form.CanSubmit(),
		Submitting: s.submitting.Load(),
		UpdatedAt:  s.updatedAt,
	}
}

// TryBeginSubmit flips the submitting flag. Only the caller that gets true
// may generate and dispatch; it must call EndSubmit when done.
func (s *BriefingSession) TryBeginSubmit() bool {
	return s.submitting.CompareAndSwap(false, true)
}

func (s *BriefingSession) EndSubmit() {
	s.submitting.Store(false)
}

func (s *BriefingSession) Submitting() bool {
	return s.submitting.Load()
}
