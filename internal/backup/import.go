package backup

import (
	"encoding/json"
	"strings"

	"worklog/internal/domain"
	"worklog/internal/errors"
	"worklog/internal/logging"
	"worklog/internal/services"
)

// ImportSummary reports what an import did. Invalid records are skipped and
// counted rather than failing the whole import; duplicates of existing ids
// are silently dropped.
type ImportSummary struct {
	ProjectsAdded     int
	EntriesAdded      int
	BreaksAdded       int
	DuplicatesSkipped int
	InvalidRecords    int
}

// importPayload accepts the import file shape. Records are kept raw so one
// malformed record does not abort decoding of the rest.
type importPayload struct {
	Projects []json.RawMessage `json:"projects"`
	Entries  []json.RawMessage `json:"entries"`
	Breaks   []json.RawMessage `json:"breaks"`
}

// Importer merges exported data back into the ledgers.
type Importer struct {
	projects services.ProjectService
	entries  services.EntryService
	breaks   services.BreakService
}

// NewImporter creates a new Importer over the given services.
func NewImporter(projects services.ProjectService, entries services.EntryService, breaks services.BreakService) *Importer {
	return &Importer{
		projects: projects,
		entries:  entries,
		breaks:   breaks,
	}
}

// Import parses the JSON document and merges its records. The merge is
// union-by-id and additive only: existing records always win, and nothing is
// ever deleted by an import. The overall import is best effort, never
// transactional; only a malformed top-level document is an error.
func (im *Importer) Import(data []byte) (*ImportSummary, error) {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.NewValidationError("import file is not valid JSON", err)
	}

	summary := &ImportSummary{}

	validProjects := make([]*domain.Project, 0, len(payload.Projects))
	for _, raw := range payload.Projects {
		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil || !validProject(&p) {
			summary.InvalidRecords++
			logging.Debugf("import: skipping invalid project record\n")
			continue
		}
		validProjects = append(validProjects, &p)
	}

	validEntries := make([]*domain.TimeEntry, 0, len(payload.Entries))
	for _, raw := range payload.Entries {
		var e domain.TimeEntry
		if err := json.Unmarshal(raw, &e); err != nil || !validEntry(&e) {
			summary.InvalidRecords++
			logging.Debugf("import: skipping invalid time entry record\n")
			continue
		}
		validEntries = append(validEntries, &e)
	}

	validBreaks := make([]*domain.BreakEntry, 0, len(payload.Breaks))
	for _, raw := range payload.Breaks {
		var b domain.BreakEntry
		if err := json.Unmarshal(raw, &b); err != nil || !validBreak(&b) {
			summary.InvalidRecords++
			logging.Debugf("import: skipping invalid break record\n")
			continue
		}
		validBreaks = append(validBreaks, &b)
	}

	added, err := im.projects.Merge(validProjects)
	if err != nil {
		return nil, err
	}
	summary.ProjectsAdded = added
	summary.DuplicatesSkipped += len(validProjects) - added

	added, err = im.entries.Merge(validEntries)
	if err != nil {
		return nil, err
	}
	summary.EntriesAdded = added
	summary.DuplicatesSkipped += len(validEntries) - added

	added, err = im.breaks.Merge(validBreaks)
	if err != nil {
		return nil, err
	}
	summary.BreaksAdded = added
	summary.DuplicatesSkipped += len(validBreaks) - added

	return summary, nil
}

// Minimal per-record identity checks, matching what the original build
// required before accepting an imported record.

func validProject(p *domain.Project) bool {
	return strings.TrimSpace(p.ID) != "" &&
		strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Client) != ""
}

func validEntry(e *domain.TimeEntry) bool {
	return strings.TrimSpace(e.ID) != "" &&
		strings.TrimSpace(e.ProjectID) != "" &&
		!e.StartTime.IsZero()
}

func validBreak(b *domain.BreakEntry) bool {
	return strings.TrimSpace(b.ID) != "" &&
		strings.TrimSpace(b.TimeEntryID) != "" &&
		!b.StartTime.IsZero()
}
