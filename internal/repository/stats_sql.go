package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

type sqlStats struct {
	conn *sql.DB
}

func NewSQLStatsRepository(conn *sql.DB) StatsRepository {
	return &sqlStats{
		conn: conn,
	}
}

func (that *sqlStats) IncrementWin(ctx context.Context, userID string) error {
	query := `INSERT INTO player_stats (user_id, wins, losses) VALUES (?, 1, 0)
		ON CONFLICT (user_id) DO UPDATE SET wins = wins + 1`

	if _, err := that.conn.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("can't increment wins: %w", err)
	}

	return nil
}

func (that *sqlStats) IncrementLoss(ctx context.Context, userID string) error {
	query := `INSERT INTO player_stats (user_id, wins, losses) VALUES (?, 0, 1)
		ON CONFLICT (user_id) DO UPDATE SET losses = losses + 1`

	if _, err := that.conn.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("can't increment losses: %w", err)
	}

	return nil
}

func (that *sqlStats) GetByUserID(ctx context.Context, userID string) (*entity.PlayerStats, error) {
	query := `SELECT wins, losses FROM player_stats WHERE user_id = ?`

	stats := &entity.PlayerStats{UserID: userID}

	err := that.conn.QueryRowContext(ctx, query, userID).Scan(&stats.Wins, &stats.Losses)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get stats: %w", err)
	}

	stats.Total = stats.Wins + stats.Losses

	return stats, nil
}
