package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

const (
	queryDatabaseExists = "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"

	// duplicate_database
	codeDuplicateDatabase = "42P04"
)

// Manager implements movieapi.DatabaseManager. Stateless and safe for
// concurrent use.
type Manager struct{}

// New creates a new DatabaseManager instance.
func New() movieapi.DatabaseManager {
	return &Manager{}
}

// Exists checks if a database exists.
func (m *Manager) Exists(ctx context.Context, conn movieapi.DBConnection, dbName string) (bool, error) {
	var exists bool
	if err := conn.QueryRow(ctx, queryDatabaseExists, dbName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	return exists, nil
}

// Create issues CREATE DATABASE on a dedicated connection, since the
// statement cannot run inside a transaction block.
func (m *Manager) Create(ctx context.Context, conn movieapi.DBConnection, dbName string) error {
	pooledConn, err := conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer pooledConn.Release()

	query := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{dbName}.Sanitize())
	if _, err := pooledConn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create database %q: %w", dbName, err)
	}
	return nil
}

// Ensure creates dbName unless it already exists and reports whether it
// did. Losing a creation race to another client counts as already existing.
func Ensure(ctx context.Context, mgr movieapi.DatabaseManager, conn movieapi.DBConnection, dbName string) (bool, error) {
	exists, err := mgr.Exists(ctx, conn, dbName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := mgr.Create(ctx, conn, dbName); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeDuplicateDatabase {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ movieapi.DatabaseManager = (*Manager)(nil)
