package store

// Store is the durable key-value contract the ledgers persist through.
// Values are JSON documents keyed by a fixed string per collection.
//
// Get reports found=false when the key has never been written; a corrupt or
// unreadable value returns a storage error and callers are expected to fall
// back to their default rather than fail.
type Store interface {
	Get(key string, out interface{}) (found bool, err error)
	Set(key string, value interface{}) error
	Delete(key string) error
	Close() error
}

// Fixed storage keys, one per persisted collection. The names are carried
// over from the original browser build so its exports stay importable.
const (
	KeyProjects = "timetracker_projects"
	KeyEntries  = "timetracker_entries"
	KeyBreaks   = "timetracker_breaks"
	KeyLanguage = "timetracker_language"
	KeyTheme    = "timetracker_theme"
)
