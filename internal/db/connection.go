package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service wraps the database handle shared by all repositories.
type Service struct {
	DB *sql.DB
}

// NewService opens a connection pool against the given PostgreSQL DSN and
// verifies it with a ping. The caller owns the returned handle and must
// Close it.
func NewService(connStr string) (*Service, error) {
	if connStr == "" {
		return nil, fmt.Errorf("database connection string must not be empty")
	}

	database, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	database.SetMaxOpenConns(50)
	database.SetMaxIdleConns(25)
	database.SetConnMaxLifetime(5 * time.Minute)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	return &Service{DB: database}, nil
}

// Health reports whether the backing database answers a ping.
func (s *Service) Health() map[string]string {
	stats := make(map[string]string)

	if err := s.DB.Ping(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	return stats
}

func (s *Service) Close() error {
	return s.DB.Close()
}
