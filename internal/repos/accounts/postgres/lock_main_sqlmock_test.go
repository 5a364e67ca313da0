package accounts

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockMain_QueryShape(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE main AND user_id IN ($1, $2)`) + `(?s).*ORDER BY id\s+FOR UPDATE`).
		WithArgs("1234", "5678").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "main", "balance_minor"}).
			AddRow("1234-01", "1234", true, int64(500)).
			AddRow("5678-01", "5678", true, int64(0)))
	mock.ExpectRollback()

	tx, err := db.BeginTx(t.Context(), nil)
	require.NoError(t, err)

	got, err := New(db).LockMain(t.Context(), tx, "1234", "5678")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Len(t, got, 2)
	assert.Equal(t, int64(500), got["1234"].BalanceMinor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockMain_NoUsers(t *testing.T) {
	t.Parallel()

	got, err := New(nil).LockMain(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
