package services

import (
	"time"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/store"
	"worklog/internal/validation"
)

// breakServiceImpl implements the BreakService interface
type breakServiceImpl struct {
	store     store.Store
	entries   EntryService
	validator *validation.BreakValidator
	now       func() time.Time
}

// NewBreakService creates a new BreakService instance
func NewBreakService(st store.Store, entries EntryService) BreakService {
	return &breakServiceImpl{
		store:     st,
		entries:   entries,
		validator: validation.NewBreakValidator(),
		now:       time.Now,
	}
}

func (s *breakServiceImpl) load() []*domain.BreakEntry {
	return loadCollection[domain.BreakEntry](s.store, store.KeyBreaks)
}

func (s *breakServiceImpl) save(breaks []*domain.BreakEntry) error {
	return saveCollection(s.store, store.KeyBreaks, breaks)
}

func findOpenBreak(breaks []*domain.BreakEntry, timeEntryID string) *domain.BreakEntry {
	for _, b := range breaks {
		if b.TimeEntryID == timeEntryID && b.IsOpen() {
			return b
		}
	}
	return nil
}

// Open creates an open break against a currently active time entry. At most
// one break per entry may be open at a time.
func (s *breakServiceImpl) Open(timeEntryID string, breakType domain.BreakType, description string) (*domain.BreakEntry, error) {
	if err := s.validator.ValidateForOpen(timeEntryID, breakType); err != nil {
		return nil, err
	}

	entry, err := s.entries.Get(timeEntryID)
	if err != nil {
		return nil, errors.NewInvalidStateError("open break", "time entry does not exist")
	}
	if !entry.IsActive {
		return nil, errors.NewInvalidStateError("open break", "time entry is not active")
	}

	breaks := s.load()
	if open := findOpenBreak(breaks, timeEntryID); open != nil {
		return nil, errors.NewInvalidStateError("open break",
			"a break is already open for this entry").WithContext("openBreakId", open.ID)
	}

	now := s.now()
	brk := &domain.BreakEntry{
		ID:          domain.NewID(),
		TimeEntryID: timeEntryID,
		StartTime:   now,
		Duration:    0,
		Type:        breakType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	breaks = append(breaks, brk)
	if err := s.save(breaks); err != nil {
		return nil, err
	}
	return brk, nil
}

// Close finalizes an open break, freezing its duration as elapsed wall-clock
// time from start to now.
func (s *breakServiceImpl) Close(breakID string) (*domain.BreakEntry, error) {
	breaks := s.load()

	var brk *domain.BreakEntry
	for _, b := range breaks {
		if b.ID == breakID {
			brk = b
			break
		}
	}
	if brk == nil {
		return nil, errors.NewInvalidStateError("close break", "break does not exist")
	}
	if !brk.IsOpen() {
		return nil, errors.NewInvalidStateError("close break", "break is already closed")
	}

	now := s.now()
	brk.Duration = now.Sub(brk.StartTime).Milliseconds()
	brk.EndTime = &now
	brk.UpdatedAt = now

	if err := s.save(breaks); err != nil {
		return nil, err
	}
	return brk, nil
}

// OpenBreakForEntry returns the open break for the given entry, or nil.
func (s *breakServiceImpl) OpenBreakForEntry(timeEntryID string) (*domain.BreakEntry, error) {
	return findOpenBreak(s.load(), timeEntryID), nil
}

// ListForEntry returns the breaks owned by the given entry in insertion order.
func (s *breakServiceImpl) ListForEntry(timeEntryID string) ([]*domain.BreakEntry, error) {
	result := make([]*domain.BreakEntry, 0)
	for _, b := range s.load() {
		if b.TimeEntryID == timeEntryID {
			result = append(result, b)
		}
	}
	return result, nil
}

// List returns all break entries in insertion order.
func (s *breakServiceImpl) List() ([]*domain.BreakEntry, error) {
	return s.load(), nil
}

// Delete removes a break entry.
func (s *breakServiceImpl) Delete(id string) error {
	breaks := s.load()
	idx := -1
	for i, b := range breaks {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NewNotFoundError("break", id)
	}
	breaks = append(breaks[:idx], breaks[idx+1:]...)
	return s.save(breaks)
}

// Merge unions imported breaks into the ledger by id. Existing records win
// on collision. Returns the number added.
func (s *breakServiceImpl) Merge(records []*domain.BreakEntry) (int, error) {
	breaks := s.load()
	existing := make(map[string]bool, len(breaks))
	for _, b := range breaks {
		existing[b.ID] = true
	}

	added := 0
	for _, rec := range records {
		if existing[rec.ID] {
			continue
		}
		breaks = append(breaks, rec)
		existing[rec.ID] = true
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := s.save(breaks); err != nil {
		return 0, err
	}
	return added, nil
}
