// Package settings owns the user-facing configuration state (language and
// theme) as an explicit observable object: mutations persist to the store
// and notify subscribers, replacing ad-hoc global mutable state.
package settings

import (
	"sync"

	"worklog/internal/i18n"
	"worklog/internal/store"
	"worklog/internal/validation"
)

// Settings is a snapshot of the persisted user settings.
type Settings struct {
	Language i18n.Language
	DarkMode bool
}

// Manager loads, persists, and publishes settings changes. Subscribers are
// notified synchronously after each successful mutation.
type Manager struct {
	store store.Store

	mu      sync.Mutex
	current Settings
	subs    map[int]func(Settings)
	nextSub int
}

// NewManager creates a Manager, loading any persisted settings. Missing or
// unreadable values fall back to the defaults.
func NewManager(st store.Store) *Manager {
	m := &Manager{
		store: st,
		current: Settings{
			Language: i18n.DefaultLanguage,
		},
		subs: make(map[int]func(Settings)),
	}

	var lang i18n.Language
	if found, err := st.Get(store.KeyLanguage, &lang); err == nil && found && lang.Valid() {
		m.current.Language = lang
	}
	var dark bool
	if found, err := st.Get(store.KeyTheme, &dark); err == nil && found {
		m.current.DarkMode = dark
	}
	return m
}

// Current returns the current settings snapshot.
func (m *Manager) Current() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetLanguage validates, persists, and publishes a language change.
func (m *Manager) SetLanguage(lang i18n.Language) error {
	if !lang.Valid() {
		ve := validation.NewValidationError()
		ve.AddInvalidValueError("language", string(lang), "must be one of en, de, el")
		return ve
	}
	if err := m.store.Set(store.KeyLanguage, lang); err != nil {
		return err
	}

	m.mu.Lock()
	m.current.Language = lang
	snapshot := m.current
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, snapshot)
	return nil
}

// SetDarkMode persists and publishes a theme change.
func (m *Manager) SetDarkMode(dark bool) error {
	if err := m.store.Set(store.KeyTheme, dark); err != nil {
		return err
	}

	m.mu.Lock()
	m.current.DarkMode = dark
	snapshot := m.current
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, snapshot)
	return nil
}

// Subscribe registers fn to be called after each settings change. The
// returned function cancels the subscription.
func (m *Manager) Subscribe(fn func(Settings)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// subscribers snapshots the subscriber list; callers must hold mu.
func (m *Manager) subscribers() []func(Settings) {
	subs := make([]func(Settings), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Settings), snapshot Settings) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
