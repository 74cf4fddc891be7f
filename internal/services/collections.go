package services

import (
	"worklog/internal/logging"
	"worklog/internal/store"
)

// loadCollection reads a whole ledger collection from the store. Read
// failures (missing key, corrupt document) fall back to an empty collection
// so analytics and the CLI always have something to render; the failure is
// only visible in debug output.
func loadCollection[T any](st store.Store, key string) []*T {
	var items []*T
	found, err := st.Get(key, &items)
	if err != nil {
		logging.Debugf("store read for %s failed, falling back to empty collection: %v\n", key, err)
		return []*T{}
	}
	if !found || items == nil {
		return []*T{}
	}
	return items
}

// saveCollection writes a whole ledger collection back to the store. Every
// mutation persists the full collection so readers never observe a partial
// write.
func saveCollection[T any](st store.Store, key string, items []*T) error {
	return st.Set(key, items)
}
