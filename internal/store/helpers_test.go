package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ireneID  = "0190b7c4-8f1e-7d3a-9c41-2f6e5b8a1d01"
	seulgiID = "0190b7c4-8f1e-7d3a-9c41-2f6e5b8a1d02"
	blogOne  = "0190b7c4-8f1e-7d3a-9c41-2f6e5b8a1e01"
	blogTwo  = "0190b7c4-8f1e-7d3a-9c41-2f6e5b8a1e02"
)

var (
	userRowColumns = []string{"id", "username", "name", "password_hash", "blogs", "created_at"}
	blogRowColumns = []string{"id", "title", "url", "author", "likes", "user_id", "created_at", "id", "username", "name"}
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	db := newDB(conn, logger.Nop())
	db.retryDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	return db, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
