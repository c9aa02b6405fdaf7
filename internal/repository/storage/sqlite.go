package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS matches (
		lobby_id    TEXT PRIMARY KEY,
		winner_id   TEXT NOT NULL DEFAULT '',
		finished_at INTEGER NOT NULL,
		data        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS match_players (
		lobby_id    TEXT NOT NULL,
		user_id     TEXT NOT NULL,
		finished_at INTEGER NOT NULL,
		PRIMARY KEY (lobby_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS match_players_user ON match_players (user_id, finished_at)`,
	`CREATE TABLE IF NOT EXISTS player_stats (
		user_id TEXT PRIMARY KEY,
		wins    INTEGER NOT NULL DEFAULT 0,
		losses  INTEGER NOT NULL DEFAULT 0
	)`,
}

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// sqlite serializes writers; one connection also keeps ":memory:" databases shared.
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init - creates the tables used by the result repositories.
func (that *Storage) Init(ctx context.Context) error {
	for _, query := range schema {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
