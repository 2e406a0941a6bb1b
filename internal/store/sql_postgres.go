package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 900 * time.Millisecond}

// DB is the PostgreSQL connection pool shared by all repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
}

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN, applies the pool
// limits and pings the server.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		retryDelays:        retryDelays,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// HealthCheck pings the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}

// withRetry runs op and repeats it while the error is classified as
// Retryable, at most len(db.retryDelays) more times.
func (db *DB) withRetry(ctx context.Context, funcName string, op func() error) error {
	return db.retry(ctx, funcName, op, func(error) bool { return true })
}

// withInsertRetry is withRetry for writes that must not be replayed once the
// server may have committed them. A lost connection leaves the outcome
// unknown, so such errors end the loop.
func (db *DB) withInsertRetry(ctx context.Context, funcName string, op func() error) error {
	return db.retry(ctx, funcName, op, func(err error) bool { return !commitOutcomeUnknown(err) })
}

func (db *DB) retry(ctx context.Context, funcName string, op func() error, replayable func(error) bool) error {
	err := op()
	for attempt := 0; attempt < len(db.retryDelays); attempt++ {
		if err == nil || db.errorClassificator.Classify(err) != Retryable || !replayable(err) {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt+1).
			Msg("retrying database operation after transient error")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(db.retryDelays[attempt]):
		}

		err = op()
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
