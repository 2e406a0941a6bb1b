package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it as stored, with the
// server-assigned CreatedAt and an empty blog set.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	var created models.User
	err = r.db.withInsertRetry(ctx, "*userRepository.CreateUser", func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error saving user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to create query")
		return models.User{}, err
	}

	var found models.User
	err = r.db.withRetry(ctx, "*userRepository.findUser", func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &found)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*userRepository.findUser").Str(column, value).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str(column, value).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListUsers returns every user with the projections of the blogs they own.
// Dangling ids in a user's blog set are skipped.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	var users []models.User
	err = r.db.withRetry(ctx, "*userRepository.ListUsers", func() error {
		var queryErr error
		users, queryErr = r.queryUsers(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	blogIDs := make([]string, 0, len(users))
	for _, u := range users {
		blogIDs = append(blogIDs, u.BlogIDs...)
	}
	if len(blogIDs) == 0 {
		return users, nil
	}

	query, args, err = buildBlogProjectionsQuery(blogIDs)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create projections query")
		return nil, err
	}

	var projections map[string]models.BlogProjection
	err = r.db.withRetry(ctx, "*userRepository.ListUsers", func() error {
		var queryErr error
		projections, queryErr = r.queryBlogProjections(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Int("blogs", len(blogIDs)).Msg("error loading blog projections")
		return nil, err
	}

	for i := range users {
		for _, id := range users[i].BlogIDs {
			if p, ok := projections[id]; ok {
				users[i].Blogs = append(users[i].Blogs, p)
			}
		}
	}

	return users, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args []any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) queryBlogProjections(ctx context.Context, query string, args []any) (map[string]models.BlogProjection, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projections := make(map[string]models.BlogProjection)
	for rows.Next() {
		var p models.BlogProjection
		if err := rows.Scan(&p.ID, &p.Title, &p.URL, &p.Author); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projections[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projections, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *models.User) error {
	if err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, pq.Array(&u.BlogIDs), &u.CreatedAt); err != nil {
		return err
	}
	u.Blogs = make([]models.BlogProjection, 0, len(u.BlogIDs))
	return nil
}
