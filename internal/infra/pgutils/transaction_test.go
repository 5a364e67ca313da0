package pgutils

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	t.Parallel()

	errFn := errors.New("fn failed")

	tests := []struct {
		name    string
		fnErr   error
		expect  func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "commit",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE accounts").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name:  "rollback_on_error",
			fnErr: errFn,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE accounts").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
			wantErr: errFn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			tt.expect(mock)

			err = WithTx(t.Context(), db, func(tx *sql.Tx) error {
				_, execErr := tx.ExecContext(t.Context(), "UPDATE accounts SET balance_minor = 0")
				require.NoError(t, execErr)

				return tt.fnErr
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTxBeginFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	called := false
	err = WithTx(t.Context(), db, func(*sql.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
