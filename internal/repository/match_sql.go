package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/infinity-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/infinity-tictactoe/internal/entity"
)

type sqlMatch struct {
	conn *sql.DB
}

func NewSQLMatchRepository(conn *sql.DB) MatchRepository {
	return &sqlMatch{
		conn: conn,
	}
}

func (that *sqlMatch) Save(ctx context.Context, match *entity.MatchResult) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT OR REPLACE INTO matches (lobby_id, winner_id, finished_at, data) VALUES (?, ?, ?, ?)`
	if _, err = tx.ExecContext(ctx, query, match.LobbyID, match.WinnerID, match.FinishedAt.UnixNano(), string(matchJSON)); err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	query = `INSERT OR IGNORE INTO match_players (lobby_id, user_id, finished_at) VALUES (?, ?, ?)`
	for _, player := range match.Players {
		if _, err = tx.ExecContext(ctx, query, match.LobbyID, player.UserID, match.FinishedAt.UnixNano()); err != nil {
			return fmt.Errorf("can't save match player: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit match: %w", err)
	}

	return nil
}

func (that *sqlMatch) GetByID(ctx context.Context, lobbyID string) (*entity.MatchResult, error) {
	query := `SELECT data FROM matches WHERE lobby_id = ?`

	var data string

	err := that.conn.QueryRowContext(ctx, query, lobbyID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find match: %w", err)
	}

	var match entity.MatchResult
	if err = json.Unmarshal([]byte(data), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

func (that *sqlMatch) ListByPlayer(ctx context.Context, userID string, limit int) ([]*entity.MatchResult, error) {
	query := `SELECT m.data FROM matches m
		JOIN match_players p ON p.lobby_id = m.lobby_id
		WHERE p.user_id = ?
		ORDER BY p.finished_at DESC
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}
	defer rows.Close()

	var matches []*entity.MatchResult
	for rows.Next() {
		var data string
		if err = rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}

		var match entity.MatchResult
		if err = json.Unmarshal([]byte(data), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}

		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}

	return matches, nil
}
