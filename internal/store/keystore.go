package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/societyhub/societyhub/internal/crypto"
	"github.com/societyhub/societyhub/internal/logger"
)

// credentialName is the fixed key under which the single session credential
// lives. The table allows more rows, but the client only ever uses this one.
const credentialName = "session"

type sqliteKeystore struct {
	db     *sql.DB
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewKeystore constructs the SQLite-backed [TokenStore]. Tokens are sealed
// before they touch the database and opened on the way out.
func NewKeystore(db *sql.DB, sealer crypto.Sealer, log *logger.Logger) TokenStore {
	return &sqliteKeystore{db: db, sealer: sealer, logger: log}
}

// Save implements [TokenStore]. The upsert is a single statement, so a
// concurrent reader observes either the old credential or the new one,
// never a torn state.
func (k *sqliteKeystore) Save(ctx context.Context, token string) error {
	sealed, err := k.sealer.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}

	query, args, err := sq.
		Insert("credentials").
		Columns("name", "sealed", "updated_at").
		Values(credentialName, sealed, time.Now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET sealed = excluded.sealed, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save credential query: %w", err)
	}

	if _, err = k.db.ExecContext(ctx, query, args...); err != nil {
		k.logger.Err(err).Msg("failed to persist credential")
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

// Load implements [TokenStore].
func (k *sqliteKeystore) Load(ctx context.Context) (string, error) {
	query, args, err := sq.
		Select("sealed").
		From("credentials").
		Where(sq.Eq{"name": credentialName}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build load credential query: %w", err)
	}

	var sealed []byte
	if err = k.db.QueryRowContext(ctx, query, args...).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoCredential
		}
		k.logger.Err(err).Msg("failed to read credential")
		return "", fmt.Errorf("load credential: %w", err)
	}

	token, err := k.sealer.Open(sealed)
	if err != nil {
		// A blob that no longer opens (changed seal secret, corrupt file) is
		// indistinguishable from no credential as far as callers care.
		k.logger.Warn().Err(err).Msg("stored credential cannot be opened, treating as absent")
		return "", ErrNoCredential
	}

	return string(token), nil
}

// Clear implements [TokenStore].
func (k *sqliteKeystore) Clear(ctx context.Context) error {
	query, args, err := sq.
		Delete("credentials").
		Where(sq.Eq{"name": credentialName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear credential query: %w", err)
	}

	if _, err = k.db.ExecContext(ctx, query, args...); err != nil {
		k.logger.Err(err).Msg("failed to clear credential")
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}
