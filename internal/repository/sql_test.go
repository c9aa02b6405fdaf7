package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/repository/storage"
)

func newSQLite(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()

	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.Init(ctx))

	t.Cleanup(func() {
		_ = st.Close()
	})

	return ctx, st.Connection
}

func TestSQLMatchRepository(t *testing.T) {
	t.Run("Save and GetByID", func(t *testing.T) {
		ctx, conn := newSQLite(t)

		matchRepo := NewSQLMatchRepository(conn)

		// Given: a finished match
		match := newMatch("lobby-1", time.Now())

		// When: it is saved twice
		require.NoError(t, matchRepo.Save(ctx, match))
		require.NoError(t, matchRepo.Save(ctx, match))

		// Then: it reads back unchanged
		stored, err := matchRepo.GetByID(ctx, "lobby-1")
		require.NoError(t, err)
		assert.Equal(t, match, stored)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, conn := newSQLite(t)

		_, err := NewSQLMatchRepository(conn).GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("ListByPlayer newest first", func(t *testing.T) {
		ctx, conn := newSQLite(t)

		matchRepo := NewSQLMatchRepository(conn)
		now := time.Now()
		require.NoError(t, matchRepo.Save(ctx, newMatch("older", now.Add(-time.Hour))))
		require.NoError(t, matchRepo.Save(ctx, newMatch("newer", now)))

		matches, err := matchRepo.ListByPlayer(ctx, "b", 10)

		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "newer", matches[0].LobbyID)

		matches, err = matchRepo.ListByPlayer(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestSQLStatsRepository(t *testing.T) {
	ctx, conn := newSQLite(t)

	statsRepo := NewSQLStatsRepository(conn)

	// Given: a player with one win and two losses
	require.NoError(t, statsRepo.IncrementWin(ctx, "a"))
	require.NoError(t, statsRepo.IncrementLoss(ctx, "a"))
	require.NoError(t, statsRepo.IncrementLoss(ctx, "a"))

	// When: the stats are read
	stats, err := statsRepo.GetByUserID(ctx, "a")

	// Then: totals are derived from the counters
	require.NoError(t, err)
	assert.Equal(t, &entity.PlayerStats{UserID: "a", Wins: 1, Losses: 2, Total: 3}, stats)

	stats, err = statsRepo.GetByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}
