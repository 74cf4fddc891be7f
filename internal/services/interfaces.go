package services

import (
	"time"

	"worklog/internal/domain"
	"worklog/internal/store"
)

// NewProject carries the user-supplied fields for project creation.
type NewProject struct {
	Name        string
	Client      string
	Description string
	Color       string
	HourlyRate  *float64
	Tags        []string
	ParentID    string
}

// ProjectPatch carries optional field updates for a project. Nil fields are
// left unchanged.
type ProjectPatch struct {
	Name        *string
	Client      *string
	Description *string
	Color       *string
	HourlyRate  *float64
	Tags        []string
	IsActive    *bool
	ParentID    *string
}

// EntryPatch carries optional field updates for a time entry. Nil fields are
// left unchanged.
type EntryPatch struct {
	ProjectID   *string
	Description *string
	StartTime   *time.Time
}

// SessionSummary is returned when a work session is stopped: the finalized
// entry together with all breaks taken during it.
type SessionSummary struct {
	Entry  *domain.TimeEntry   `json:"timeEntry"`
	Breaks []*domain.BreakEntry `json:"breakEntries"`
}

// SessionStatus describes the live tracking state for display. Entry is nil
// when no session is running. Elapsed values are sampled against the wall
// clock at call time and never persisted.
type SessionStatus struct {
	Entry              *domain.TimeEntry
	OpenBreak          *domain.BreakEntry
	ElapsedMillis      int64
	BreakElapsedMillis int64
}

// ProjectService owns the set of project records.
type ProjectService interface {
	Create(input NewProject) (*domain.Project, error)
	Get(id string) (*domain.Project, error)
	List() ([]*domain.Project, error)
	Update(id string, patch ProjectPatch) (*domain.Project, error)
	Delete(id string) error
	Subprojects(parentID string) ([]*domain.Project, error)
	Merge(records []*domain.Project) (int, error)
}

// EntryService owns the time entry ledger and its single-active-entry
// invariant. Start and Stop are precondition-checked primitives; the cascade
// from an already-running session is the SessionService's responsibility.
type EntryService interface {
	Start(projectID, description string) (*domain.TimeEntry, error)
	Stop() (*domain.TimeEntry, error)
	Active() (*domain.TimeEntry, error)
	Get(id string) (*domain.TimeEntry, error)
	List() ([]*domain.TimeEntry, error)
	Update(id string, patch EntryPatch) (*domain.TimeEntry, error)
	Delete(id string) error
	Merge(records []*domain.TimeEntry) (int, error)
}

// BreakService owns break records scoped to their parent time entry.
type BreakService interface {
	Open(timeEntryID string, breakType domain.BreakType, description string) (*domain.BreakEntry, error)
	Close(breakID string) (*domain.BreakEntry, error)
	OpenBreakForEntry(timeEntryID string) (*domain.BreakEntry, error)
	ListForEntry(timeEntryID string) ([]*domain.BreakEntry, error)
	List() ([]*domain.BreakEntry, error)
	Delete(id string) error
	Merge(records []*domain.BreakEntry) (int, error)
}

// SessionService coordinates the entry and break ledgers into the
// user-facing tracking verbs.
type SessionService interface {
	Start(projectID, description string) (*domain.TimeEntry, error)
	Stop() (*SessionSummary, error)
	StartBreak(breakType domain.BreakType, description string) (*domain.BreakEntry, error)
	EndBreak(breakID string) (*domain.BreakEntry, error)
	Current() (*SessionStatus, error)
}

// ReportingService derives analytics over the ledgers. It never errors on
// dangling references; entries whose project was deleted contribute zero
// revenue.
type ReportingService interface {
	Report(window Window) (*Report, error)
}

// ServiceContainer bundles all services behind their interfaces.
type ServiceContainer struct {
	Projects  ProjectService
	Entries   EntryService
	Breaks    BreakService
	Session   SessionService
	Reporting ReportingService
}

// NewContainer wires the services against the given store.
func NewContainer(st store.Store, dailyLimitMillis int64) *ServiceContainer {
	projects := NewProjectService(st)
	entries := NewEntryService(st)
	breaks := NewBreakService(st, entries)
	session := NewSessionService(entries, breaks)
	reporting := NewReportingService(entries, breaks, projects, dailyLimitMillis)

	return &ServiceContainer{
		Projects:  projects,
		Entries:   entries,
		Breaks:    breaks,
		Session:   session,
		Reporting: reporting,
	}
}
