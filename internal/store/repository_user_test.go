package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock, conn := newTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{ID: ireneID, Username: "Irene", Name: "Bae Joo Hyun", PasswordHash: "hash"}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Username, user.Name, user.PasswordHash).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(user.ID, user.Username, user.Name, user.PasswordHash, "{}", now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, ireneID, created.ID)
	assert.Equal(t, "Irene", created.Username)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.Empty(t, created.BlogIDs)
	assert.NotNil(t, created.Blogs)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{ID: ireneID, Username: "Irene"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_ConnectionLostIsNotReplayed(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// A second INSERT would hit the unique index if the first one committed.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{ID: ireneID, Username: "Irene"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, pgerrcode.ConnectionFailure, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{ID: ireneID, Username: "Irene"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"), err.Error())
}

func TestCreateUser_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(ireneID, "Irene", "", "hash", "{}", time.Now()))

	created, err := repo.CreateUser(context.Background(), models.User{ID: ireneID, Username: "Irene"})
	require.NoError(t, err)
	assert.Equal(t, ireneID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, name, password_hash, blogs, created_at FROM users WHERE username = $1")).
		WithArgs("Irene").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(ireneID, "Irene", "Bae Joo Hyun", "hash", "{"+blogOne+","+blogTwo+"}", time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "Irene")
	require.NoError(t, err)
	assert.Equal(t, ireneID, found.ID)
	assert.Equal(t, []string{blogOne, blogTwo}, found.BlogIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("Wendy").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(context.Background(), "Wendy")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("Irene").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByUsername(context.Background(), "Irene")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestListUsers_WithBlogProjections(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at, id")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(ireneID, "Irene", "Bae Joo Hyun", "hash-1", "{"+blogTwo+","+blogOne+"}", now).
			AddRow(seulgiID, "Seulgi", "Kang Seul Gi", "hash-2", "{}", now))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, url, author FROM blogs WHERE id = ANY($1::uuid[])")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "url", "author"}).
			AddRow(blogOne, "The Art of Blogging", "https://example.com/art", "Irene").
			AddRow(blogTwo, "Mastering Mongoose Schemas", "https://example.com/schemas", "Irene"))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.Len(t, users[0].Blogs, 2)
	assert.Equal(t, "Mastering Mongoose Schemas", users[0].Blogs[0].Title)
	assert.Equal(t, "The Art of Blogging", users[0].Blogs[1].Title)
	assert.Empty(t, users[1].Blogs)
	assert.NotNil(t, users[1].Blogs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_NoBlogsSkipsProjectionQuery(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at, id")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(seulgiID, "Seulgi", "", "hash", "{}", time.Now()))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
