package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type ResultService interface {
	// RecordMatch - stores the match record, then updates the win/loss counters of its players.
	RecordMatch(ctx context.Context, match *entity.MatchResult) error

	GetStats(ctx context.Context, userID string) (*entity.PlayerStats, error)
	// GetHistory - most recent matches first; limit defaults to 20 and is capped at 100.
	GetHistory(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error)
}

type matchRepo interface {
	Save(ctx context.Context, match *entity.MatchResult) error
	ListByPlayer(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error)
}

type statsRepo interface {
	IncrementWin(ctx context.Context, userID string) error
	IncrementLoss(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (*entity.PlayerStats, error)
}

type resultService struct {
	logger    *slog.Logger
	matchRepo matchRepo
	statsRepo statsRepo
}

func NewResultService(logger *slog.Logger, matchRepo matchRepo, statsRepo statsRepo) ResultService {
	return &resultService{
		logger:    logger.With("component", "result_service"),
		matchRepo: matchRepo,
		statsRepo: statsRepo,
	}
}

func (that *resultService) RecordMatch(ctx context.Context, match *entity.MatchResult) error {
	log := that.logger.With("method", "RecordMatch", "lobbyID", match.LobbyID)

	var errs []error

	if err := that.matchRepo.Save(ctx, match); err != nil {
		errs = append(errs, fmt.Errorf("failed to save match: %w", err))
	}

	// counters are independent of the record, so a failed save does not skip them.
	if !match.IsInconclusive() {
		if err := that.statsRepo.IncrementWin(ctx, match.WinnerID); err != nil {
			errs = append(errs, fmt.Errorf("failed to increment win of %s: %w", match.WinnerID, err))
		}

		for _, loser := range match.Losers() {
			if err := that.statsRepo.IncrementLoss(ctx, loser.UserID); err != nil {
				errs = append(errs, fmt.Errorf("failed to increment loss of %s: %w", loser.UserID, err))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info("match recorded", "winnerID", match.WinnerID, "reason", match.Reason)

	return nil
}

func (that *resultService) GetStats(ctx context.Context, userID string) (*entity.PlayerStats, error) {
	stats, err := that.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get stats: %w", err)
	}

	return stats, nil
}

func (that *resultService) GetHistory(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	matches, err := that.matchRepo.ListByPlayer(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get match history: %w", err)
	}

	return matches, nil
}
