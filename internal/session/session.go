// Package session carries the per-run context the shell threads through each
// operation, instead of keeping global mutable state.
package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acortes/studytrack/internal/config"
	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/domain/risk"
	"github.com/acortes/studytrack/internal/domain/schedule"
)

// Session is one interactive run of the tracker.
type Session struct {
	ID      string
	Started time.Time
	Config  config.Config
	Logger  *slog.Logger

	// Clock supplies "now" for scoring, planning, and overdue derivation so
	// tests can pin it.
	Clock func() time.Time

	Notes       *note.Service
	Assignments *assignment.Service
	Scorer      risk.Scorer
	Planner     *schedule.Planner
}

// New creates a session context around the wired services.
func New(cfg config.Config, logger *slog.Logger, notes *note.Service, assignments *assignment.Service, scorer risk.Scorer) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Started:     time.Now(),
		Config:      cfg,
		Logger:      logger,
		Clock:       time.Now,
		Notes:       notes,
		Assignments: assignments,
		Scorer:      scorer,
		Planner:     schedule.NewPlanner(scorer),
	}
	logger.Info("session started", "session_id", s.ID)
	return s
}

// Now returns the session's current time.
func (s *Session) Now() time.Time {
	return s.Clock()
}
