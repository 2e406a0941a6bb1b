package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlogRepo(t *testing.T) (*blogRepository, sqlmock.Sqlmock) {
	db, mock, conn := newTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return &blogRepository{DB: db, logger: logger.Nop()}, mock
}

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

// ---------------------------------------------------------------------------
// ListBlogs / GetBlogByID
// ---------------------------------------------------------------------------

func TestListBlogs_PopulatesOwner(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM blogs b LEFT JOIN users u ON u.id = b.user_id ORDER BY b.created_at, b.id")).
		WillReturnRows(sqlmock.NewRows(blogRowColumns).
			AddRow(blogOne, "The Art of Blogging", "https://example.com/art", "Irene", 15, ireneID, now, ireneID, "Irene", "Bae Joo Hyun").
			AddRow(blogTwo, "Mastering Mongoose Schemas", "https://example.com/schemas", "Seulgi", 20, nil, now, nil, nil, nil))

	blogs, err := repo.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 2)

	assert.Equal(t, 15, blogs[0].Likes)
	require.NotNil(t, blogs[0].User)
	assert.Equal(t, models.UserProjection{ID: ireneID, Username: "Irene", Name: "Bae Joo Hyun"}, *blogs[0].User)
	assert.Equal(t, ireneID, blogs[0].UserID)

	assert.Nil(t, blogs[1].User)
	assert.Empty(t, blogs[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBlogs_Empty(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM blogs b")).
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	blogs, err := repo.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)
}

func TestGetBlogByID_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.id = $1")).
		WithArgs(blogOne).
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	_, err := repo.GetBlogByID(context.Background(), blogOne)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

// ---------------------------------------------------------------------------
// CreateBlog
// ---------------------------------------------------------------------------

func newBlog() models.Blog {
	return models.Blog{
		ID:     blogOne,
		Title:  "By My Side",
		URL:    "https://example.com/by-my-side",
		Author: "Irene",
		UserID: ireneID,
	}
}

func TestCreateBlog_Success(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := newBlog()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs (id,title,url,author,likes,user_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at")).
		WithArgs(blog.ID, blog.Title, blog.URL, blog.Author, 0, blog.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(regexp.QuoteMeta("array_append(blogs, $1::uuid)")).
		WithArgs(blog.ID, blog.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "name"}).AddRow(ireneID, "Irene", "Bae Joo Hyun"))
	mock.ExpectCommit()

	created, err := repo.CreateBlog(context.Background(), blog)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, 0, created.Likes)
	require.NotNil(t, created.User)
	assert.Equal(t, "Irene", created.User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_UnknownOwner(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := newBlog()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs(blog.ID, blog.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "name"}))
	mock.ExpectRollback()

	_, err := repo.CreateBlog(context.Background(), blog)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateBlog(context.Background(), newBlog())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_BeginError(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.CreateBlog(context.Background(), newBlog())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCreateBlog_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	blog := newBlog()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "name"}).AddRow(ireneID, "Irene", ""))
	mock.ExpectCommit()

	_, err := repo.CreateBlog(context.Background(), blog)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_CommitConnectionLostIsNotReplayed(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "name"}).AddRow(ireneID, "Irene", ""))
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateBlog(context.Background(), newBlog())
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.Equal(t, pgerrcode.ConnectionFailure, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// UpdateBlog
// ---------------------------------------------------------------------------

func TestUpdateBlog_Success(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blogs SET likes = $1 WHERE id = $2 RETURNING id")).
		WithArgs(16, blogOne).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(blogOne))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.id = $1")).
		WithArgs(blogOne).
		WillReturnRows(sqlmock.NewRows(blogRowColumns).
			AddRow(blogOne, "The Art of Blogging", "https://example.com/art", "Irene", 16, ireneID, time.Now(), ireneID, "Irene", ""))

	updated, err := repo.UpdateBlog(context.Background(), blogOne, models.BlogUpdate{Likes: ptrInt(16)})
	require.NoError(t, err)
	assert.Equal(t, 16, updated.Likes)
	assert.Equal(t, ireneID, updated.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateBlog(context.Background(), blogOne, models.BlogUpdate{Title: ptrStr("Feel My Rhythm")})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateBlog_EmptyUpdateReadsCurrent(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.id = $1")).
		WithArgs(blogOne).
		WillReturnRows(sqlmock.NewRows(blogRowColumns).
			AddRow(blogOne, "The Art of Blogging", "https://example.com/art", "Irene", 15, ireneID, time.Now(), ireneID, "Irene", ""))

	blog, err := repo.UpdateBlog(context.Background(), blogOne, models.BlogUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 15, blog.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// DeleteBlog
// ---------------------------------------------------------------------------

func TestDeleteBlog_Success(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM blogs WHERE id = $1 RETURNING user_id")).
		WithArgs(blogOne).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ireneID))
	mock.ExpectExec(regexp.QuoteMeta("array_remove(blogs, $1::uuid)")).
		WithArgs(blogOne, ireneID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteBlog(context.Background(), blogOne))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_WithoutOwner(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(nil))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteBlog(context.Background(), blogOne))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectRollback()

	err := repo.DeleteBlog(context.Background(), blogOne)
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_CommitError(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ireneID))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.DeleteBlog(context.Background(), blogOne)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
