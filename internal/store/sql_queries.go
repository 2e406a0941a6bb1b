package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bloglist/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// psql builds statements with PostgreSQL ($n) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "username", "name", "password_hash", "blogs", "created_at"}

	blogColumns = []string{
		"b.id", "b.title", "b.url", "b.author", "b.likes", "b.user_id", "b.created_at",
		"u.id", "u.username", "u.name",
	}

	blogProjectionColumns = []string{"id", "title", "url", "author"}
)

const (
	// addBlogToUser appends a blog id to the owner's set unless it is already
	// present. Runs inside the create transaction.
	addBlogToUser = `UPDATE users
		SET blogs = CASE WHEN $1::uuid = ANY(blogs) THEN blogs ELSE array_append(blogs, $1::uuid) END
		WHERE id = $2
		RETURNING id, username, name;`

	removeBlogFromUser = `UPDATE users
		SET blogs = array_remove(blogs, $1::uuid)
		WHERE id = $2;`
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(models.User{}.TableName()).
		Columns("id", "username", "name", "password_hash").
		Values(user.ID, user.Username, user.Name, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(column, value string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildBlogProjectionsQuery selects the reduced projection of every blog in
// ids. Ordering is restored by the caller from the users' blog sets.
func buildBlogProjectionsQuery(ids []string) (string, []any, error) {
	query, args, err := psql.
		Select(blogProjectionColumns...).
		From(models.Blog{}.TableName()).
		Where("id = ANY(?::uuid[])", pq.Array(ids)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func selectBlogs() sq.SelectBuilder {
	return psql.
		Select(blogColumns...).
		From(models.Blog{}.TableName() + " b").
		LeftJoin(models.User{}.TableName() + " u ON u.id = b.user_id")
}

func buildListBlogsQuery() (string, []any, error) {
	query, args, err := selectBlogs().
		OrderBy("b.created_at", "b.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetBlogQuery(id string) (string, []any, error) {
	query, args, err := selectBlogs().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateBlogQuery(blog models.Blog) (string, []any, error) {
	query, args, err := psql.
		Insert(models.Blog{}.TableName()).
		Columns("id", "title", "url", "author", "likes", "user_id").
		Values(blog.ID, blog.Title, blog.URL, blog.Author, blog.Likes, blog.UserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateBlogQuery builds a partial UPDATE that only touches the non-nil
// fields of update. The owner column is never part of the SET list.
func buildUpdateBlogQuery(id string, update models.BlogUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update(models.Blog{}.TableName())
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Author != nil {
		builder = builder.Set("author", *update.Author)
	}
	if update.Likes != nil {
		builder = builder.Set("likes", *update.Likes)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteBlogQuery(id string) (string, []any, error) {
	query, args, err := psql.
		Delete(models.Blog{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
