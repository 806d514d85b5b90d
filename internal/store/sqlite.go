package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/societyhub/societyhub/internal/config"
	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/migrations"
)

// OpenKeystoreDB opens (creating if needed) the local SQLite database that
// backs the credential keystore and brings its schema up to date.
func OpenKeystoreDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.DSN+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite keystore: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite keystore: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate sqlite keystore: %w", err)
	}

	log.Info().Str("dsn", cfg.DSN).Msg("keystore ready")
	return db, nil
}
