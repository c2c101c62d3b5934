package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Reforge_Go/internal/database/migrations"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

// MigratePostgres opens a short-lived database/sql handle on dsn and applies
// the postgres migrations.
func MigratePostgres(ctx context.Context, dsn string) error {
	db, err := sql.Open(DriverPgx, dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	defer db.Close()

	return Migrate(ctx, db, DialectPostgres)
}

// Migrate applies every pending migration for dialect
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	dir, err := migrationDir(dialect)
	if err != nil {
		return err
	}
	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "dialect", dialect)
	return nil
}

func migrationDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return migrations.PostgresDir, nil
	case DialectSQLite:
		return migrations.SQLiteDir, nil
	default:
		return "", fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}
}
