package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

const (
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldTotal  = "total"
)

type StatsRepository interface {
	IncrementWin(ctx context.Context, userID string) error
	IncrementLoss(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (*entity.PlayerStats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func statsKey(userID string) string {
	return "player:" + userID + ":stats"
}

func (that *dbStats) IncrementWin(ctx context.Context, userID string) error {
	return that.increment(ctx, userID, fieldWins)
}

func (that *dbStats) IncrementLoss(ctx context.Context, userID string) error {
	return that.increment(ctx, userID, fieldLosses)
}

func (that *dbStats) increment(ctx context.Context, userID, field string) error {
	key := statsKey(userID)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, field, 1)
		pipe.HIncrBy(ctx, key, fieldTotal, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", field, err)
	}

	return nil
}

// GetByUserID - returns zero stats for a player without finished matches.
func (that *dbStats) GetByUserID(ctx context.Context, userID string) (*entity.PlayerStats, error) {
	values, err := that.client.HGetAll(ctx, statsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &entity.PlayerStats{UserID: userID}

	for field, target := range map[string]*int64{
		fieldWins:   &stats.Wins,
		fieldLosses: &stats.Losses,
		fieldTotal:  &stats.Total,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid %s counter: %w", field, err)
		}
	}

	return stats, nil
}
