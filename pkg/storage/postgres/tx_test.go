package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"accounts/pkg/storage"
	"accounts/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: an account stored in the tx survives the commit
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreAccount(ctx, testAccount("committed"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	// Verify persistence outside tx
	got, err := pg.AccountByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback should discard the stored account
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := txStorage.StoreAccount(ctx, testAccount("discarded"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	got, err := pg.AccountByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreAccount(ctx, testAccount("kept"))

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	got, err := pg.AccountByUsername(ctx, "kept")
	require.NoError(t, err)
	require.NotNil(t, got)

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, e := s.StoreAccount(ctx, testAccount("dropped")); e != nil {
			return e //nolint: wrapcheck
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err = pg.AccountByUsername(ctx, "dropped")
	require.NoError(t, err)
	require.Nil(t, got)
}
