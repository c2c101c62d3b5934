// Package sqlite stores reforge levels in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/database"
	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

const (
	queryGetLevel = `SELECT level FROM reforge_levels WHERE player_id = ? AND item_id = ?`

	queryUpsertLevel = `
INSERT INTO reforge_levels (player_id, item_id, level, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (player_id, item_id) DO UPDATE SET level = excluded.level, updated_at = excluded.updated_at`

	queryDeleteLevel = `DELETE FROM reforge_levels WHERE player_id = ? AND item_id = ?`

	queryAllLevels = `SELECT item_id, level FROM reforge_levels WHERE player_id = ?`
)

// Store persists reforge levels in SQLite
type Store struct {
	db *sql.DB
}

var _ levelstore.Store = (*Store)(nil)

// Open opens the database at path and applies migrations
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, player uuid.UUID, itemID string) (int, error) {
	var level int
	err := s.db.QueryRowContext(ctx, queryGetLevel, player.String(), domain.CanonicalItemID(itemID)).Scan(&level)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fail(levelstore.OpLoad, "failed to get reforge level", err)
	}
	return level, nil
}

func (s *Store) Set(ctx context.Context, player uuid.UUID, itemID string, level int) error {
	if level < 0 {
		return fmt.Errorf("%w: "+levelstore.ErrMsgNegativeLevelFmt, domain.ErrInvalidInput, level)
	}
	if level == 0 {
		return s.Remove(ctx, player, itemID)
	}
	_, err := s.db.ExecContext(ctx, queryUpsertLevel,
		player.String(), domain.CanonicalItemID(itemID), level, time.Now().UTC().UnixMilli())
	if err != nil {
		return fail(levelstore.OpPersist, "failed to upsert reforge level", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, player uuid.UUID, itemID string) error {
	if _, err := s.db.ExecContext(ctx, queryDeleteLevel, player.String(), domain.CanonicalItemID(itemID)); err != nil {
		return fail(levelstore.OpPersist, "failed to delete reforge level", err)
	}
	return nil
}

func (s *Store) GetAll(ctx context.Context, player uuid.UUID) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, queryAllLevels, player.String())
	if err != nil {
		return nil, fail(levelstore.OpLoad, "failed to list reforge levels", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			item  string
			level int
		)
		if err := rows.Scan(&item, &level); err != nil {
			return nil, fail(levelstore.OpLoad, "failed to scan reforge level", err)
		}
		out[item] = level
	}
	if err := rows.Err(); err != nil {
		return nil, fail(levelstore.OpLoad, "failed to list reforge levels", err)
	}
	return out, nil
}

// Close closes the SQLite handle
// Ping reports whether the database file is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func fail(op, msg string, err error) error {
	metrics.LevelStoreErrors.WithLabelValues(op).Inc()
	return fmt.Errorf("%s: %w", msg, err)
}
