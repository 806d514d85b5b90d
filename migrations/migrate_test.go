package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesCredentialsTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "keystore.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='credentials'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "credentials", name)

	// Running migrations twice must be a no-op.
	require.NoError(t, Migrate(db))
}
