package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/timeutil"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "worklog.db", cfg.Store.Filename)
	assert.NotEmpty(t, cfg.Store.Dir)
	assert.Equal(t, Duration(8*time.Hour), cfg.Tracking.DailyWorkLimit)
	assert.Equal(t, 5, cfg.Display.RecentEntries)
	assert.Equal(t, 8*timeutil.MillisPerHour, cfg.DailyLimitMillis())
}

func TestConfig_GetStorePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Dir = "/data/worklog"
	cfg.Store.Filename = "db.sqlite"

	assert.Equal(t, filepath.Join("/data/worklog", "db.sqlite"), cfg.GetStorePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKLOG_STORE_DIR", "/tmp/wl")
	t.Setenv("WORKLOG_STORE_FILENAME", "custom.db")
	t.Setenv("WORKLOG_DAILY_LIMIT", "6h30m")
	t.Setenv("WORKLOG_RECENT_ENTRIES", "10")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wl", cfg.Store.Dir)
	assert.Equal(t, "custom.db", cfg.Store.Filename)
	assert.Equal(t, Duration(6*time.Hour+30*time.Minute), cfg.Tracking.DailyWorkLimit)
	assert.Equal(t, 10, cfg.Display.RecentEntries)
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("WORKLOG_DAILY_LIMIT", "not a duration")
	t.Setenv("WORKLOG_RECENT_ENTRIES", "-3")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, Duration(8*time.Hour), cfg.Tracking.DailyWorkLimit)
	assert.Equal(t, 5, cfg.Display.RecentEntries)
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[store]
dir = "/srv/worklog"

[tracking]
daily_work_limit = "7h"

[display]
recent_entries = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "/srv/worklog", cfg.Store.Dir)
	assert.Equal(t, "worklog.db", cfg.Store.Filename, "unset values keep their defaults")
	assert.Equal(t, Duration(7*time.Hour), cfg.Tracking.DailyWorkLimit)
	assert.Equal(t, 3, cfg.Display.RecentEntries)
}

func TestConfig_LoadFromFile_Missing(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile(filepath.Join(t.TempDir(), "absent.toml")))
	assert.Equal(t, Duration(8*time.Hour), cfg.Tracking.DailyWorkLimit)
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("7h30m")))
	assert.Equal(t, Duration(7*time.Hour+30*time.Minute), d)
	assert.Equal(t, "7h30m0s", d.String())

	require.Error(t, d.UnmarshalText([]byte("eight hours")))
}

func TestConfig_LoadFromFile_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tracking]
daily_work_limit = "eight hours"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := NewConfig()
	require.Error(t, cfg.LoadFromFile(path))
}

func TestCreateStore(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Dir = filepath.Join(t.TempDir(), "nested", "dir")

	st, err := CreateStore(cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Set("k", 42))
	var out int
	found, err := st.Get("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, out)
}
