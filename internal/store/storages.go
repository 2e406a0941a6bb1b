package store

import "github.com/MKhiriev/go-bloglist/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository
	HealthChecker  HealthChecker
}

// NewStorages builds all repositories on top of one connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		BlogRepository: NewBlogRepository(db, logger),
		HealthChecker:  db,
	}
}
