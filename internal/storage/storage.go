package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
)

// Storage reads through the connection pool. Writes go through Write, which
// opens a transaction.
type Storage struct {
	DB *sql.DB
	Reader

	bobDB bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened connection pool.
func FromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		Reader: *NewReader(bobDB),
		bobDB:  bobDB,
	}
}

// Write begins a transaction and returns a Writer bound to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
