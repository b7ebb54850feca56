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
	"github.com/jrsteele09/go-session-server/posts"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"id", "title", "text", "author_id"}

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

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS posts").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs("hello", "world", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	p, err := repo.Create(context.Background(), posts.Input{Title: "hello", Text: "world"}, 1)
	require.NoError(t, err)
	require.Equal(t, posts.Post{ID: 7, Title: "hello", Text: "world", AuthorID: 1}, *p)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnknownAuthor(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
		WithArgs("hello", "world", int64(99)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := repo.Create(context.Background(), posts.Input{Title: "hello", Text: "world"}, 99)
	require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(int64(1), "a", "first", int64(1)).
			AddRow(int64(2), "b", "second", int64(2)))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "second", all[1].Text)
	require.Equal(t, int64(2), all[1].AuthorID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(sqlmock.NewRows(postColumns))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestListDatabaseDown(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background())
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestGetUpdateDelete(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(int64(3), "t", "x", int64(2)))
	p, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), p.AuthorID)

	mock.ExpectQuery(regexp.QuoteMeta(updateQuery)).
		WithArgs(int64(3), "new", "body").
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(int64(3), "new", "body", int64(2)))
	p, err = repo.Update(ctx, 3, posts.Input{Title: "new", Text: "body"})
	require.NoError(t, err)
	require.Equal(t, "new", p.Title)

	mock.ExpectQuery(regexp.QuoteMeta(deleteQuery)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(int64(3), "new", "body", int64(2)))
	p, err = repo.Delete(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(3), p.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingPost(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)
	_, err := repo.Get(ctx, 9)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(updateQuery)).WithArgs(int64(9), "t", "x").WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(ctx, 9, posts.Input{Title: "t", Text: "x"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(deleteQuery)).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)
	_, err = repo.Delete(ctx, 9)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
