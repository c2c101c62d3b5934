package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

const (
	queryGetLevel = `SELECT level FROM reforge_levels WHERE player_id = $1 AND item_id = $2`

	queryUpsertLevel = `
INSERT INTO reforge_levels (player_id, item_id, level, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (player_id, item_id) DO UPDATE SET level = EXCLUDED.level, updated_at = NOW()`

	queryDeleteLevel = `DELETE FROM reforge_levels WHERE player_id = $1 AND item_id = $2`

	queryAllLevels = `SELECT item_id, level FROM reforge_levels WHERE player_id = $1`
)

// LevelRepository stores reforge levels in PostgreSQL
type LevelRepository struct {
	pool *pgxpool.Pool
}

var _ levelstore.Store = (*LevelRepository)(nil)

// NewLevelRepository creates a new LevelRepository on an open pool
func NewLevelRepository(pool *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{pool: pool}
}

func (r *LevelRepository) Get(ctx context.Context, player uuid.UUID, itemID string) (int, error) {
	rows, err := r.pool.Query(ctx, queryGetLevel, player, domain.CanonicalItemID(itemID))
	if err != nil {
		return 0, r.fail(levelstore.OpLoad, "failed to get reforge level", err)
	}
	defer rows.Close()

	level := 0
	if rows.Next() {
		if err := rows.Scan(&level); err != nil {
			return 0, r.fail(levelstore.OpLoad, "failed to scan reforge level", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, r.fail(levelstore.OpLoad, "failed to get reforge level", err)
	}
	return level, nil
}

func (r *LevelRepository) Set(ctx context.Context, player uuid.UUID, itemID string, level int) error {
	if level < 0 {
		return fmt.Errorf("%w: "+levelstore.ErrMsgNegativeLevelFmt, domain.ErrInvalidInput, level)
	}
	if level == 0 {
		return r.Remove(ctx, player, itemID)
	}
	if _, err := r.pool.Exec(ctx, queryUpsertLevel, player, domain.CanonicalItemID(itemID), level); err != nil {
		return r.fail(levelstore.OpPersist, "failed to upsert reforge level", err)
	}
	return nil
}

func (r *LevelRepository) Remove(ctx context.Context, player uuid.UUID, itemID string) error {
	if _, err := r.pool.Exec(ctx, queryDeleteLevel, player, domain.CanonicalItemID(itemID)); err != nil {
		return r.fail(levelstore.OpPersist, "failed to delete reforge level", err)
	}
	return nil
}

func (r *LevelRepository) GetAll(ctx context.Context, player uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, queryAllLevels, player)
	if err != nil {
		return nil, r.fail(levelstore.OpLoad, "failed to list reforge levels", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			item  string
			level int
		)
		if err := rows.Scan(&item, &level); err != nil {
			return nil, r.fail(levelstore.OpLoad, "failed to scan reforge level", err)
		}
		out[item] = level
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(levelstore.OpLoad, "failed to list reforge levels", err)
	}
	return out, nil
}

// Close releases the pool
func (r *LevelRepository) Close() error {
	r.pool.Close()
	return nil
}

func (r *LevelRepository) fail(op, msg string, err error) error {
	metrics.LevelStoreErrors.WithLabelValues(op).Inc()
	return fmt.Errorf("%s: %w", msg, err)
}
