package domain

import "time"

// BreakType categorizes a break entry.
type BreakType string

const (
	BreakLunch    BreakType = "lunch"
	BreakCoffee   BreakType = "coffee"
	BreakMeeting  BreakType = "meeting"
	BreakPersonal BreakType = "personal"
	BreakOther    BreakType = "other"
)

// Valid reports whether the break type is one of the known categories.
func (bt BreakType) Valid() bool {
	switch bt {
	case BreakLunch, BreakCoffee, BreakMeeting, BreakPersonal, BreakOther:
		return true
	}
	return false
}

// BreakTypes lists all valid break types in display order.
func BreakTypes() []BreakType {
	return []BreakType{BreakLunch, BreakCoffee, BreakMeeting, BreakPersonal, BreakOther}
}

// Project represents a billable project or sub-project.
// A project whose ParentID is non-empty is a sub-project and may not
// itself be used as a parent (single-level hierarchy).
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Client      string    `json:"client"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	HourlyRate  *float64  `json:"hourlyRate,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsActive    bool      `json:"isActive"`
	ParentID    string    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsSubproject reports whether the project has a parent.
func (p *Project) IsSubproject() bool {
	return p.ParentID != ""
}

// TimeEntry represents a single continuous work session against one project.
// Duration is gross elapsed wall-clock time in milliseconds, including break
// time. It stays zero while the entry is running and is frozen at stop; live
// elapsed time is always derived from StartTime, never persisted early.
type TimeEntry struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Duration    int64      `json:"duration"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// GrossMillis returns the entry's gross duration in milliseconds. For an
// active entry this is the live elapsed time sampled against now; for a
// stopped entry it is the frozen duration.
func (e *TimeEntry) GrossMillis(now time.Time) int64 {
	if e.IsActive {
		return now.Sub(e.StartTime).Milliseconds()
	}
	return e.Duration
}

// BreakEntry represents an interruption period within a work session.
// Duration is zero while the break is open and frozen in milliseconds when
// the break is closed.
type BreakEntry struct {
	ID          string     `json:"id"`
	TimeEntryID string     `json:"timeEntryId"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Duration    int64      `json:"duration"`
	Type        BreakType  `json:"type"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsOpen reports whether the break has not been closed yet.
func (b *BreakEntry) IsOpen() bool {
	return b.EndTime == nil
}
