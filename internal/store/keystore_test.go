package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub/internal/crypto"
	"github.com/societyhub/societyhub/internal/logger"
)

func newTestKeystore(t *testing.T) (TokenStore, crypto.Sealer, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sealer := crypto.NewSealer("keystore-test-secret")
	return NewKeystore(db, sealer, logger.Nop()), sealer, mock, db
}

func TestKeystore_Save(t *testing.T) {
	ks, _, mock, _ := newTestKeystore(t)

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(credentialName, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, ks.Save(context.Background(), "tok-abc"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeystore_LoadRoundTrip(t *testing.T) {
	ks, sealer, mock, _ := newTestKeystore(t)

	sealed, err := sealer.Seal([]byte("tok-abc"))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT sealed FROM credentials").
		WithArgs(credentialName).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow(sealed))

	token, err := ks.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestKeystore_LoadNoCredential(t *testing.T) {
	ks, _, mock, _ := newTestKeystore(t)

	mock.ExpectQuery("SELECT sealed FROM credentials").
		WithArgs(credentialName).
		WillReturnError(sql.ErrNoRows)

	_, err := ks.Load(context.Background())
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestKeystore_LoadUnopenableBlobTreatedAsAbsent(t *testing.T) {
	ks, _, mock, _ := newTestKeystore(t)

	foreign, err := crypto.NewSealer("some-other-secret").Seal([]byte("tok"))
	require.NoError(t, err)

	mock.ExpectQuery("SELECT sealed FROM credentials").
		WithArgs(credentialName).
		WillReturnRows(sqlmock.NewRows([]string{"sealed"}).AddRow(foreign))

	_, err = ks.Load(context.Background())
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestKeystore_Clear(t *testing.T) {
	ks, _, mock, _ := newTestKeystore(t)

	mock.ExpectExec("DELETE FROM credentials").
		WithArgs(credentialName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ks.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKeystore_SaveExecFailure(t *testing.T) {
	ks, _, mock, _ := newTestKeystore(t)

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(errors.New("disk full"))

	err := ks.Save(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save credential")
}
