package services

import (
	"sort"
	"time"

	"worklog/internal/domain"
	"worklog/internal/timeutil"
)

// WindowKind names the supported analytics time windows.
type WindowKind string

const (
	WindowToday   WindowKind = "today"
	WindowWeek    WindowKind = "week"
	WindowMonth   WindowKind = "month"
	WindowQuarter WindowKind = "quarter"
	WindowYear    WindowKind = "year"
	WindowCustom  WindowKind = "custom"
)

// Window is a time-window filter for analytics. Start and End are only used
// for custom windows; named windows are resolved against the current time.
type Window struct {
	Kind  WindowKind
	Start time.Time
	End   time.Time
}

// Bounds resolves the window to a concrete [start, end] range. The week
// starts on Monday, the month on the 1st.
func (w Window) Bounds(now time.Time) (time.Time, time.Time) {
	switch w.Kind {
	case WindowToday:
		return timeutil.StartOfDay(now), now
	case WindowWeek:
		return timeutil.StartOfWeek(now), now
	case WindowMonth:
		return timeutil.StartOfMonth(now), now
	case WindowQuarter:
		return timeutil.StartOfQuarter(now), now
	case WindowYear:
		return timeutil.StartOfYear(now), now
	case WindowCustom:
		end := w.End
		if end.IsZero() {
			end = now
		}
		return w.Start, end
	default:
		return timeutil.StartOfDay(now), now
	}
}

// Summary holds the aggregate figures for a set of entries.
type Summary struct {
	TotalTime      int64   `json:"totalTime"`
	TotalBreakTime int64   `json:"totalBreakTime"`
	NetWorkTime    int64   `json:"netWorkTime"`
	EntriesCount   int     `json:"entriesCount"`
	WorkEfficiency float64 `json:"workEfficiency"`
}

// ProjectStats holds the per-project breakdown figures. Project is nil when
// the entries reference a project that no longer exists; such groups report
// zero revenue.
type ProjectStats struct {
	Project   *domain.Project `json:"project,omitempty"`
	ProjectID string          `json:"projectId"`
	TotalTime int64           `json:"totalTime"`
	BreakTime int64           `json:"breakTime"`
	NetTime   int64           `json:"netTime"`
	Entries   int             `json:"entries"`
	Revenue   float64         `json:"revenue"`
}

// Report is the full analytics view over one window.
type Report struct {
	Window            Window              `json:"-"`
	Period            WindowKind          `json:"period"`
	GeneratedAt       time.Time           `json:"generatedAt"`
	Summary           Summary             `json:"summary"`
	Projects          []ProjectStats      `json:"projects"`
	OvertimeMillis    int64               `json:"overtime"`
	AverageDailyHours float64             `json:"avgDailyHours"`
	TotalRevenue      float64             `json:"totalRevenue"`
	Entries           []*domain.TimeEntry `json:"entries"`
	RecentEntries     []*domain.TimeEntry `json:"-"`
}

// recentEntriesLimit caps the dashboard's most-recent list.
const recentEntriesLimit = 5

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	entries          EntryService
	breaks           BreakService
	projects         ProjectService
	dailyLimitMillis int64
	now              func() time.Time
}

// NewReportingService creates a new ReportingService instance. dailyLimitMillis
// is the configured daily work limit used for overtime.
func NewReportingService(entries EntryService, breaks BreakService, projects ProjectService, dailyLimitMillis int64) ReportingService {
	return &reportingServiceImpl{
		entries:          entries,
		breaks:           breaks,
		projects:         projects,
		dailyLimitMillis: dailyLimitMillis,
		now:              time.Now,
	}
}

// Report derives the full analytics view for the given window.
func (s *reportingServiceImpl) Report(window Window) (*Report, error) {
	now := s.now()

	allEntries, err := s.entries.List()
	if err != nil {
		return nil, err
	}
	allBreaks, err := s.breaks.List()
	if err != nil {
		return nil, err
	}
	allProjects, err := s.projects.List()
	if err != nil {
		return nil, err
	}

	filtered := FilterByWindow(allEntries, window, now)
	byEntry := GroupBreaksByEntry(allBreaks)
	summary := Aggregate(filtered, byEntry, now)
	stats := PerProjectBreakdown(filtered, byEntry, allProjects, now)

	return &Report{
		Window:            window,
		Period:            window.Kind,
		GeneratedAt:       now,
		Summary:           summary,
		Projects:          stats,
		OvertimeMillis:    Overtime(filtered, byEntry, s.dailyLimitMillis, now),
		AverageDailyHours: AverageDailyHours(summary.TotalTime, window, now),
		TotalRevenue:      TotalRevenue(stats),
		Entries:           filtered,
		RecentEntries:     RecentEntries(allEntries, recentEntriesLimit),
	}, nil
}

// FilterByWindow returns the entries whose start time falls within the window.
func FilterByWindow(entries []*domain.TimeEntry, window Window, now time.Time) []*domain.TimeEntry {
	start, end := window.Bounds(now)
	filtered := make([]*domain.TimeEntry, 0)
	for _, e := range entries {
		if e.StartTime.Before(start) || e.StartTime.After(end) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// GroupBreaksByEntry indexes breaks by their owning time entry, preserving
// insertion order within each group.
func GroupBreaksByEntry(breaks []*domain.BreakEntry) map[string][]*domain.BreakEntry {
	byEntry := make(map[string][]*domain.BreakEntry)
	for _, b := range breaks {
		byEntry[b.TimeEntryID] = append(byEntry[b.TimeEntryID], b)
	}
	return byEntry
}

// TotalBreakMillis sums the break durations recorded against an entry.
func TotalBreakMillis(entryID string, byEntry map[string][]*domain.BreakEntry) int64 {
	var total int64
	for _, b := range byEntry[entryID] {
		total += b.Duration
	}
	return total
}

// NetWorkMillis returns an entry's net work time: gross duration minus break
// time, clamped at zero. The clamp keeps hand-edited break records from
// producing negative displayed values; efficiency and revenue use the same
// clamped figure so all derived numbers stay consistent.
func NetWorkMillis(e *domain.TimeEntry, byEntry map[string][]*domain.BreakEntry, now time.Time) int64 {
	net := e.GrossMillis(now) - TotalBreakMillis(e.ID, byEntry)
	if net < 0 {
		return 0
	}
	return net
}

// Aggregate sums the per-entry derived quantities across a filtered set.
// Efficiency is net over gross as a percentage, 0 when there is no time.
func Aggregate(entries []*domain.TimeEntry, byEntry map[string][]*domain.BreakEntry, now time.Time) Summary {
	s := Summary{EntriesCount: len(entries)}
	for _, e := range entries {
		s.TotalTime += e.GrossMillis(now)
		s.TotalBreakTime += TotalBreakMillis(e.ID, byEntry)
		s.NetWorkTime += NetWorkMillis(e, byEntry, now)
	}
	if s.TotalTime > 0 {
		s.WorkEfficiency = float64(s.NetWorkTime) / float64(s.TotalTime) * 100
	}
	return s
}

// PerProjectBreakdown groups entries by project, keeping only groups with
// time recorded, sorted by total time descending. Revenue is net work time
// in hours times the project's hourly rate; groups whose project is unknown
// or has no rate earn zero.
func PerProjectBreakdown(entries []*domain.TimeEntry, byEntry map[string][]*domain.BreakEntry, projects []*domain.Project, now time.Time) []ProjectStats {
	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	statsByProject := make(map[string]*ProjectStats)
	order := make([]string, 0)
	for _, e := range entries {
		st, ok := statsByProject[e.ProjectID]
		if !ok {
			st = &ProjectStats{Project: byID[e.ProjectID], ProjectID: e.ProjectID}
			statsByProject[e.ProjectID] = st
			order = append(order, e.ProjectID)
		}
		st.TotalTime += e.GrossMillis(now)
		st.BreakTime += TotalBreakMillis(e.ID, byEntry)
		st.NetTime += NetWorkMillis(e, byEntry, now)
		st.Entries++
	}

	result := make([]ProjectStats, 0, len(order))
	for _, id := range order {
		st := statsByProject[id]
		if st.TotalTime <= 0 {
			continue
		}
		if st.Project != nil && st.Project.HourlyRate != nil {
			st.Revenue = timeutil.Hours(st.NetTime) * *st.Project.HourlyRate
		}
		result = append(result, *st)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalTime > result[j].TotalTime
	})
	return result
}

// TotalRevenue sums the revenue across a breakdown.
func TotalRevenue(stats []ProjectStats) float64 {
	var total float64
	for _, st := range stats {
		total += st.Revenue
	}
	return total
}

// Overtime computes net work time exceeding the daily limit, accumulated per
// calendar day. Each day's excess is clamped at zero before summing, so a
// short day never offsets another day's overtime.
func Overtime(entries []*domain.TimeEntry, byEntry map[string][]*domain.BreakEntry, dailyLimitMillis int64, now time.Time) int64 {
	netByDay := make(map[string]int64)
	for _, e := range entries {
		netByDay[timeutil.DayKey(e.StartTime)] += NetWorkMillis(e, byEntry, now)
	}

	var overtime int64
	for _, net := range netByDay {
		if excess := net - dailyLimitMillis; excess > 0 {
			overtime += excess
		}
	}
	return overtime
}

// AverageDailyHours divides total time across the window's day count. Named
// windows use fixed divisors (7/30/90/365) rather than exact calendar day
// counts, preserving the original application's approximation; custom
// windows use their actual calendar length.
func AverageDailyHours(totalMillis int64, window Window, now time.Time) float64 {
	days := 1.0
	switch window.Kind {
	case WindowToday:
		days = 1
	case WindowWeek:
		days = 7
	case WindowMonth:
		days = 30
	case WindowQuarter:
		days = 90
	case WindowYear:
		days = 365
	case WindowCustom:
		start, end := window.Bounds(now)
		days = float64(int(end.Sub(start).Hours()/24) + 1)
	}
	if days <= 0 {
		days = 1
	}
	return timeutil.Hours(totalMillis) / days
}

// RecentEntries returns the n most recently started entries, newest first.
func RecentEntries(entries []*domain.TimeEntry, n int) []*domain.TimeEntry {
	sorted := make([]*domain.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
