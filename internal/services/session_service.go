package services

import (
	"time"

	"worklog/internal/domain"
	"worklog/internal/errors"
)

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	entries EntryService
	breaks  BreakService
	now     func() time.Time
}

// NewSessionService creates a new SessionService instance
func NewSessionService(entries EntryService, breaks BreakService) SessionService {
	return &sessionServiceImpl{
		entries: entries,
		breaks:  breaks,
		now:     time.Now,
	}
}

// Start begins a new work session. A running session is stopped first as an
// explicit two-step transition through Stop, so the cascade follows the same
// rules as a user-initiated stop (including closing a dangling open break).
func (s *sessionServiceImpl) Start(projectID, description string) (*domain.TimeEntry, error) {
	active, err := s.entries.Active()
	if err != nil {
		return nil, err
	}
	if active != nil {
		if _, err := s.Stop(); err != nil {
			return nil, err
		}
	}
	return s.entries.Start(projectID, description)
}

// Stop ends the running session and returns it together with its breaks.
// A still-open break does not block the stop: it is closed at stop time so
// its duration ends with the session rather than staying orphaned.
func (s *sessionServiceImpl) Stop() (*SessionSummary, error) {
	active, err := s.entries.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewNoActiveEntryError("stop session")
	}

	open, err := s.breaks.OpenBreakForEntry(active.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		if _, err := s.breaks.Close(open.ID); err != nil {
			return nil, err
		}
	}

	entry, err := s.entries.Stop()
	if err != nil {
		return nil, err
	}

	entryBreaks, err := s.breaks.ListForEntry(entry.ID)
	if err != nil {
		return nil, err
	}

	return &SessionSummary{Entry: entry, Breaks: entryBreaks}, nil
}

// StartBreak opens a break against the running session.
func (s *sessionServiceImpl) StartBreak(breakType domain.BreakType, description string) (*domain.BreakEntry, error) {
	active, err := s.entries.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewNoActiveEntryError("start break")
	}
	return s.breaks.Open(active.ID, breakType, description)
}

// EndBreak closes an open break.
func (s *sessionServiceImpl) EndBreak(breakID string) (*domain.BreakEntry, error) {
	return s.breaks.Close(breakID)
}

// Current samples the live tracking state. Elapsed durations are computed
// against the wall clock at call time; nothing is persisted here.
func (s *sessionServiceImpl) Current() (*SessionStatus, error) {
	active, err := s.entries.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return &SessionStatus{}, nil
	}

	now := s.now()
	status := &SessionStatus{
		Entry:         active,
		ElapsedMillis: active.GrossMillis(now),
	}

	open, err := s.breaks.OpenBreakForEntry(active.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		status.OpenBreak = open
		status.BreakElapsedMillis = now.Sub(open.StartTime).Milliseconds()
	}
	return status, nil
}
