package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/errors"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// storeContract runs the Store behaviour shared by every implementation.
func storeContract(t *testing.T, st Store) {
	t.Helper()

	var out payload
	found, err := st.Get("missing", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, st.Set("k", payload{Name: "first", Count: 1}))
	found, err = st.Get("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "first", Count: 1}, out)

	// Set replaces the whole document.
	require.NoError(t, st.Set("k", payload{Name: "second", Count: 2}))
	found, err = st.Get("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", out.Name)

	// Delete is idempotent.
	require.NoError(t, st.Delete("k"))
	require.NoError(t, st.Delete("k"))
	found, err = st.Get("k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore(t *testing.T) {
	st := NewMemory()
	defer st.Close()
	storeContract(t, st)
}

func TestMemoryStore_CorruptValue(t *testing.T) {
	st := NewMemory()
	st.SetRaw("k", []byte(`{"name": unquoted}`))

	var out payload
	_, err := st.Get("k", &out)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}

func TestSQLiteStore(t *testing.T) {
	st, err := NewSQLite(filepath.Join(t.TempDir(), "worklog.db"))
	require.NoError(t, err)
	defer st.Close()
	storeContract(t, st)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worklog.db")

	st, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Set("k", payload{Name: "durable", Count: 7}))
	require.NoError(t, st.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	var out payload
	found, err := reopened.Get("k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "durable", Count: 7}, out)
}

func TestSQLiteStore_CorruptValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worklog.db")
	st, err := NewSQLite(path)
	require.NoError(t, err)
	defer st.Close()

	_, err = st.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "k", "not json")
	require.NoError(t, err)

	var out payload
	_, err = st.Get("k", &out)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}
