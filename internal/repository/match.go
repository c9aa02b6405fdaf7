package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.MatchResult) error
	GetByID(ctx context.Context, lobbyID string) (*entity.MatchResult, error)
	ListByPlayer(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func matchKey(lobbyID string) string {
	return "match:" + lobbyID
}

func playerMatchesKey(userID string) string {
	return "player:" + userID + ":matches"
}

func (that *dbMatch) Save(ctx context.Context, match *entity.MatchResult) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(match.LobbyID), matchJSON, 0)
		for _, player := range match.Players {
			pipe.LPush(ctx, playerMatchesKey(player.UserID), match.LobbyID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, lobbyID string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, matchKey(lobbyID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.MatchResult
	if err = json.Unmarshal([]byte(response), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// ListByPlayer - most recent matches of the player first.
func (that *dbMatch) ListByPlayer(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error) {
	ids, err := that.client.LRange(ctx, playerMatchesKey(userID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of player: %w", err)
	}

	matches := make([]*entity.MatchResult, 0, len(ids))
	for _, id := range ids {
		match, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		matches = append(matches, match)
	}

	return matches, nil
}
