package repository

import (
	"context"
	"database/sql"
	"errors"
	"fairhold/internal/domain"
	"fmt"

	"github.com/lib/pq"
)

//go:generate mockgen -source=database.repository.go -destination=mocks/mock_database.repository.go

// undefined_table
const pqUndefinedTable = pq.ErrorCode("42P01")

// DatabaseRepository probes the application database without touching any
// data. Implementations own their connection and must be closed.
type DatabaseRepository interface {
	Ping(ctx context.Context) error
	ProbeUsers(ctx context.Context) (domain.SchemaStatus, error)
	Close() error
}

type databaseRepositoryHandler struct {
	Db *sql.DB
}

func NewDatabaseRepository(connStr string) (DatabaseRepository, error) {
	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	dbConn.SetMaxOpenConns(1)

	return databaseRepositoryHandler{
		Db: dbConn,
	}, nil
}

func (h databaseRepositoryHandler) Ping(ctx context.Context) error {
	if err := h.Db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping db: %w", err)
	}
	return nil
}

func (h databaseRepositoryHandler) ProbeUsers(ctx context.Context) (domain.SchemaStatus, error) {
	var count int64
	err := h.Db.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&count)
	if IsUndefinedTable(err) {
		return domain.SchemaMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query users: %w", err)
	}
	return domain.SchemaReady, nil
}

func (h databaseRepositoryHandler) Close() error {
	return h.Db.Close()
}

func IsUndefinedTable(err error) bool {
	pqErr := &pq.Error{}
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUndefinedTable
	}
	return false
}
