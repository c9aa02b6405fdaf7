package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
	mockedService "github.com/rocketscienceinc/infinity-tictactoe/mocks/service"
)

var (
	errRedisDown = errors.New("redis down")
	errDiskFull  = errors.New("disk full")
)

func newTestResultService(t *testing.T) (ResultService, *mockedService.MockmatchRepo, *mockedService.MockstatsRepo) {
	t.Helper()

	matchRepo := mockedService.NewMockmatchRepo(t)
	statsRepo := mockedService.NewMockstatsRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewResultService(logger, matchRepo, statsRepo), matchRepo, statsRepo
}

func wonMatch() *entity.MatchResult {
	return &entity.MatchResult{
		LobbyID: "lobby-1",
		Players: []entity.MatchPlayer{
			{UserID: "a", Symbol: "X"},
			{UserID: "b", Symbol: "O"},
		},
		WinnerID:     "a",
		WinnerSymbol: "X",
		Reason:       entity.ReasonWin,
	}
}

func TestResultService_RecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the record and updates both counters", func(t *testing.T) {
		// Given: a match won by "a"
		resultService, matchRepo, statsRepo := newTestResultService(t)
		match := wonMatch()

		matchRepo.EXPECT().Save(mock.Anything, match).Return(nil).Once()
		statsRepo.EXPECT().IncrementWin(mock.Anything, "a").Return(nil).Once()
		statsRepo.EXPECT().IncrementLoss(mock.Anything, "b").Return(nil).Once()

		// When: the match is recorded
		err := resultService.RecordMatch(ctx, match)

		// Then: no error is returned
		require.NoError(t, err)
	})

	t.Run("Inconclusive match touches no counters", func(t *testing.T) {
		resultService, matchRepo, _ := newTestResultService(t)
		match := &entity.MatchResult{LobbyID: "lobby-2", Reason: entity.ReasonAbandoned}

		matchRepo.EXPECT().Save(mock.Anything, match).Return(nil).Once()

		require.NoError(t, resultService.RecordMatch(ctx, match))
	})

	t.Run("Failures are joined and counters still attempted", func(t *testing.T) {
		// Given: storage that fails to save the record and the loss counter
		resultService, matchRepo, statsRepo := newTestResultService(t)
		match := wonMatch()

		matchRepo.EXPECT().Save(mock.Anything, match).Return(errRedisDown).Once()
		statsRepo.EXPECT().IncrementWin(mock.Anything, "a").Return(nil).Once()
		statsRepo.EXPECT().IncrementLoss(mock.Anything, "b").Return(errDiskFull).Once()

		// When: the match is recorded
		err := resultService.RecordMatch(ctx, match)

		// Then: both causes are reported
		require.Error(t, err)
		assert.ErrorIs(t, err, errRedisDown)
		assert.ErrorIs(t, err, errDiskFull)
	})
}

func TestResultService_GetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Limit defaults and is capped", func(t *testing.T) {
		for _, tc := range []struct {
			name      string
			requested int
			expected  int
		}{
			{name: "Zero uses default", requested: 0, expected: defaultHistoryLimit},
			{name: "Above default is kept", requested: 50, expected: 50},
			{name: "Above maximum is capped", requested: 1000, expected: maxHistoryLimit},
		} {
			t.Run(tc.name, func(t *testing.T) {
				resultService, matchRepo, _ := newTestResultService(t)

				matchRepo.EXPECT().
					ListByPlayer(mock.Anything, "a", tc.expected).
					Return([]*entity.MatchResult{wonMatch()}, nil).
					Once()

				matches, err := resultService.GetHistory(ctx, "a", tc.requested)

				require.NoError(t, err)
				assert.Len(t, matches, 1)
			})
		}
	})

	t.Run("Repository error is wrapped", func(t *testing.T) {
		resultService, matchRepo, _ := newTestResultService(t)

		matchRepo.EXPECT().
			ListByPlayer(mock.Anything, "a", 5).
			Return(nil, errRedisDown).
			Once()

		_, err := resultService.GetHistory(ctx, "a", 5)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestResultService_GetStats(t *testing.T) {
	resultService, _, statsRepo := newTestResultService(t)

	expected := &entity.PlayerStats{UserID: "a", Wins: 3, Losses: 1, Total: 4}
	statsRepo.EXPECT().GetByUserID(mock.Anything, "a").Return(expected, nil).Once()

	stats, err := resultService.GetStats(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
