package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("Creates the schema", func(t *testing.T) {
		// Given: a database file in a fresh directory
		st, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "results.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		// When: the schema is created twice
		require.NoError(t, st.Init(context.Background()))
		require.NoError(t, st.Init(context.Background()))

		// Then: the tables are usable
		var count int
		require.NoError(t, st.Connection.QueryRow("SELECT COUNT(*) FROM player_stats").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("Unreachable path fails on connect", func(t *testing.T) {
		st, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "missing", "results.db"))

		require.Error(t, err)
		assert.Nil(t, st)
	})
}
