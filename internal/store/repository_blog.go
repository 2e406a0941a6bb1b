package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/jackc/pgerrcode"
)

// blogRepository is the PostgreSQL-backed implementation of
// [BlogRepository]. Reads join the owner so that every returned blog
// carries its [models.UserProjection].
type blogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] backed by the provided
// database connection and logger.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBlogs returns all blogs ordered by creation time.
func (b *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlogsQuery()
	if err != nil {
		log.Err(err).Str("func", "blogRepository.ListBlogs").Msg("failed to create query")
		return nil, err
	}

	var blogs []models.Blog
	err = b.withRetry(ctx, "blogRepository.ListBlogs", func() error {
		var queryErr error
		blogs, queryErr = b.queryBlogs(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "blogRepository.ListBlogs").Msg("error listing blogs")
		return nil, err
	}

	return blogs, nil
}

// GetBlogByID returns the blog with the given id or [ErrBlogNotFound].
func (b *blogRepository) GetBlogByID(ctx context.Context, id string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlogQuery(id)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.GetBlogByID").Msg("failed to create query")
		return models.Blog{}, err
	}

	var blog models.Blog
	err = b.withRetry(ctx, "blogRepository.GetBlogByID", func() error {
		return scanBlog(b.QueryRowContext(ctx, query, args...), &blog)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "blogRepository.GetBlogByID").Str("blog_id", id).Msg("error getting blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blog, nil
}

// CreateBlog inserts the blog and records it in the owner's blog set within
// one transaction. The returned blog has CreatedAt and User populated.
func (b *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBlogQuery(blog)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.CreateBlog").Msg("failed to create query")
		return models.Blog{}, err
	}

	created := blog
	err = b.withInsertRetry(ctx, "blogRepository.CreateBlog", func() error {
		return b.createBlogTx(ctx, query, args, &created)
	})
	if err != nil {
		log.Err(err).
			Str("func", "blogRepository.CreateBlog").
			Str("blog_id", blog.ID).
			Str("user_id", blog.UserID).
			Msg("error creating blog")
		return models.Blog{}, err
	}

	log.Info().
		Str("func", "blogRepository.CreateBlog").
		Str("blog_id", created.ID).
		Str("user_id", created.UserID).
		Msg("blog created")

	return created, nil
}

func (b *blogRepository) createBlogTx(ctx context.Context, query string, args []any, blog *models.Blog) error {
	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&blog.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var owner models.UserProjection
	err = tx.QueryRowContext(ctx, addBlogToUser, blog.ID, blog.UserID).Scan(&owner.ID, &owner.Username, &owner.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	blog.User = &owner
	return nil
}

// UpdateBlog applies the non-nil fields of update and returns the stored
// blog. An empty update only reads the current record.
func (b *blogRepository) UpdateBlog(ctx context.Context, id string, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return b.GetBlogByID(ctx, id)
	}

	query, args, err := buildUpdateBlogQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.UpdateBlog").Msg("failed to create query")
		return models.Blog{}, err
	}

	var updatedID string
	err = b.withRetry(ctx, "blogRepository.UpdateBlog", func() error {
		return b.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "blogRepository.UpdateBlog").Str("blog_id", id).Msg("error updating blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return b.GetBlogByID(ctx, updatedID)
}

// DeleteBlog deletes the blog and removes it from its owner's blog set in
// one transaction.
func (b *blogRepository) DeleteBlog(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlogQuery(id)
	if err != nil {
		log.Err(err).Str("func", "blogRepository.DeleteBlog").Msg("failed to create query")
		return err
	}

	err = b.withRetry(ctx, "blogRepository.DeleteBlog", func() error {
		return b.deleteBlogTx(ctx, id, query, args)
	})
	if err != nil && !errors.Is(err, ErrBlogNotFound) {
		log.Err(err).Str("func", "blogRepository.DeleteBlog").Str("blog_id", id).Msg("error deleting blog")
	}

	return err
}

func (b *blogRepository) deleteBlogTx(ctx context.Context, id, query string, args []any) error {
	tx, err := b.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var ownerID sql.NullString
	err = tx.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBlogNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if ownerID.Valid {
		if _, err := tx.ExecContext(ctx, removeBlogFromUser, id, ownerID.String); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (b *blogRepository) queryBlogs(ctx context.Context, query string, args []any) ([]models.Blog, error) {
	rows, err := b.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, 32)
	for rows.Next() {
		var blog models.Blog
		if err := scanBlog(rows, &blog); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

func scanBlog(row rowScanner, blog *models.Blog) error {
	var userID, ownerID, ownerUsername, ownerName sql.NullString

	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.URL,
		&blog.Author,
		&blog.Likes,
		&userID,
		&blog.CreatedAt,
		&ownerID,
		&ownerUsername,
		&ownerName,
	)
	if err != nil {
		return err
	}

	blog.UserID = userID.String
	if ownerID.Valid {
		blog.User = &models.UserProjection{
			ID:       ownerID.String,
			Username: ownerUsername.String,
			Name:     ownerName.String,
		}
	}

	return nil
}
