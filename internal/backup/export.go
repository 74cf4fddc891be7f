// Package backup implements the JSON export and import boundary. Exports are
// write-only snapshots; imports merge additively by id with existing records
// winning on collision.
package backup

import (
	"encoding/json"
	"time"

	"worklog/internal/domain"
	"worklog/internal/services"
)

// BackupDocument is the full-backup export shape.
type BackupDocument struct {
	Projects   []*domain.Project    `json:"projects,omitempty"`
	Entries    []*domain.TimeEntry  `json:"entries,omitempty"`
	Breaks     []*domain.BreakEntry `json:"breaks,omitempty"`
	ExportDate time.Time            `json:"exportDate"`
}

// ReportDocument is the analytics-report export shape.
type ReportDocument struct {
	Period     services.WindowKind `json:"period"`
	Analytics  services.Summary    `json:"analytics"`
	Entries    []*domain.TimeEntry `json:"entries"`
	ExportDate time.Time           `json:"exportDate"`
}

// SessionDocument is the single-session export shape.
type SessionDocument struct {
	TimeEntry    *domain.TimeEntry    `json:"timeEntry"`
	Project      *domain.Project      `json:"project,omitempty"`
	BreakEntries []*domain.BreakEntry `json:"breakEntries"`
	ExportDate   time.Time            `json:"exportDate"`
}

// Exporter produces the JSON export documents.
type Exporter struct {
	projects services.ProjectService
	entries  services.EntryService
	breaks   services.BreakService
	now      func() time.Time
}

// NewExporter creates a new Exporter over the given services.
func NewExporter(projects services.ProjectService, entries services.EntryService, breaks services.BreakService) *Exporter {
	return &Exporter{
		projects: projects,
		entries:  entries,
		breaks:   breaks,
		now:      time.Now,
	}
}

// ExportAll dumps every ledger into a full backup document.
func (e *Exporter) ExportAll() ([]byte, error) {
	projects, err := e.projects.List()
	if err != nil {
		return nil, err
	}
	entries, err := e.entries.List()
	if err != nil {
		return nil, err
	}
	breaks, err := e.breaks.List()
	if err != nil {
		return nil, err
	}

	doc := BackupDocument{
		Projects:   projects,
		Entries:    entries,
		Breaks:     breaks,
		ExportDate: e.now(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportReport dumps an analytics report with the entries it covers.
func (e *Exporter) ExportReport(report *services.Report) ([]byte, error) {
	doc := ReportDocument{
		Period:     report.Period,
		Analytics:  report.Summary,
		Entries:    report.Entries,
		ExportDate: e.now(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportSession dumps a finished session with its breaks and project.
func (e *Exporter) ExportSession(summary *services.SessionSummary, project *domain.Project) ([]byte, error) {
	doc := SessionDocument{
		TimeEntry:    summary.Entry,
		Project:      project,
		BreakEntries: summary.Breaks,
		ExportDate:   e.now(),
	}
	return json.MarshalIndent(doc, "", "  ")
}
