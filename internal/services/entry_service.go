package services

import (
	"time"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/store"
	"worklog/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	store     store.Store
	validator *validation.TimeEntryValidator
	now       func() time.Time
}

// NewEntryService creates a new EntryService instance
func NewEntryService(st store.Store) EntryService {
	return &entryServiceImpl{
		store:     st,
		validator: validation.NewTimeEntryValidator(),
		now:       time.Now,
	}
}

func (s *entryServiceImpl) load() []*domain.TimeEntry {
	return loadCollection[domain.TimeEntry](s.store, store.KeyEntries)
}

func (s *entryServiceImpl) save(entries []*domain.TimeEntry) error {
	return saveCollection(s.store, store.KeyEntries, entries)
}

func findEntry(entries []*domain.TimeEntry, id string) (*domain.TimeEntry, int) {
	for i, e := range entries {
		if e.ID == id {
			return e, i
		}
	}
	return nil, -1
}

func findActive(entries []*domain.TimeEntry) *domain.TimeEntry {
	for _, e := range entries {
		if e.IsActive {
			return e
		}
	}
	return nil
}

// Start creates a new active time entry. It is a precondition-checked
// primitive: if an entry is already active the call is rejected rather than
// cascading; chaining stop-then-start is the session controller's job.
func (s *entryServiceImpl) Start(projectID, description string) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateForStart(projectID, description); err != nil {
		return nil, err
	}

	entries := s.load()
	if active := findActive(entries); active != nil {
		return nil, errors.NewInvalidStateError("start tracking",
			"a time entry is already active").WithContext("activeEntryId", active.ID)
	}

	now := s.now()
	entry := &domain.TimeEntry{
		ID:          domain.NewID(),
		ProjectID:   projectID,
		StartTime:   now,
		Duration:    0,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	entries = append(entries, entry)
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// Stop finalizes the active entry: the gross duration is frozen as elapsed
// wall-clock time from start to now, the end time set, and the active flag
// cleared. Imported data can carry more than one active flag; stop clears
// every one so no entry stays running, and returns the first.
func (s *entryServiceImpl) Stop() (*domain.TimeEntry, error) {
	entries := s.load()
	entry := findActive(entries)
	if entry == nil {
		return nil, errors.NewNoActiveEntryError("stop tracking")
	}

	now := s.now()
	for _, e := range entries {
		if !e.IsActive {
			continue
		}
		e.Duration = now.Sub(e.StartTime).Milliseconds()
		e.EndTime = &now
		e.IsActive = false
		e.UpdatedAt = now
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// Active returns the currently running entry, or nil when none is active.
func (s *entryServiceImpl) Active() (*domain.TimeEntry, error) {
	return findActive(s.load()), nil
}

// Get retrieves a time entry by ID.
func (s *entryServiceImpl) Get(id string) (*domain.TimeEntry, error) {
	entry, _ := findEntry(s.load(), id)
	if entry == nil {
		return nil, errors.NewNotFoundError("time entry", id)
	}
	return entry, nil
}

// List returns all time entries in insertion order.
func (s *entryServiceImpl) List() ([]*domain.TimeEntry, error) {
	return s.load(), nil
}

// Update applies a partial update and refreshes the updated timestamp.
func (s *entryServiceImpl) Update(id string, patch EntryPatch) (*domain.TimeEntry, error) {
	entries := s.load()
	entry, idx := findEntry(entries, id)
	if idx < 0 {
		return nil, errors.NewNotFoundError("time entry", id)
	}

	if patch.ProjectID != nil {
		if err := s.validator.ValidateForStart(*patch.ProjectID, entry.Description); err != nil {
			return nil, err
		}
		entry.ProjectID = *patch.ProjectID
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.StartTime != nil {
		entry.StartTime = *patch.StartTime
	}

	entry.UpdatedAt = s.now()
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes a time entry. Deleting the active entry also clears the
// active state, since activity is derived from the stored collection.
func (s *entryServiceImpl) Delete(id string) error {
	entries := s.load()
	_, idx := findEntry(entries, id)
	if idx < 0 {
		return errors.NewNotFoundError("time entry", id)
	}
	entries = append(entries[:idx], entries[idx+1:]...)
	return s.save(entries)
}

// Merge unions imported entries into the ledger by id. Existing records win
// on collision. Returns the number added.
func (s *entryServiceImpl) Merge(records []*domain.TimeEntry) (int, error) {
	entries := s.load()
	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		existing[e.ID] = true
	}

	added := 0
	for _, rec := range records {
		if existing[rec.ID] {
			continue
		}
		entries = append(entries, rec)
		existing[rec.ID] = true
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := s.save(entries); err != nil {
		return 0, err
	}
	return added, nil
}
