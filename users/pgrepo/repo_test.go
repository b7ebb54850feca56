package pgrepo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/jrsteele09/go-session-server/internal/errors"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := New(db)
	require.NoError(t, err)
	return repo, mock
}

func TestNewRequiresDB(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByUsernameQuery)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "password", "is_admin", "is_active"}).
			AddRow(int64(1), "alice@example.com", "alice", "digest", false, true))

	u, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, "digest", u.PasswordHash)
	require.True(t, u.IsActive)
	require.False(t, u.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsernameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByUsernameQuery)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsernameDatabaseDown(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByUsernameQuery)).
		WithArgs("alice").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.GetByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
	require.True(t, apperrors.Retryable(err))
}

func TestInsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("bob@example.com", "bob", "digest").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_admin", "is_active"}).AddRow(int64(2), false, true))

	u, err := repo.Insert(context.Background(), "bob@example.com", "bob", "digest")
	require.NoError(t, err)
	require.Equal(t, int64(2), u.ID)
	require.Equal(t, "bob", u.Username)
	require.True(t, u.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDuplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("bob@example.com", "bob", "digest").
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "users_username_key",
			Detail:         "Key (username)=(bob) already exists.",
		})

	_, err := repo.Insert(context.Background(), "bob@example.com", "bob", "digest")
	require.ErrorIs(t, err, apperrors.ErrConflict)
	require.NotContains(t, err.Error(), "bob@example.com")
}

func TestSoftDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(softDeleteQuery)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.SoftDelete(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), id)

	mock.ExpectQuery(regexp.QuoteMeta(softDeleteQuery)).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.SoftDelete(context.Background(), 3)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
