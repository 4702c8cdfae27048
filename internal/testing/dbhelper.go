// Package testing holds integration-test helpers shared by the store,
// loader and CLI tests.
package testing

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/movieapi/internal/db"
	"github.com/vvka-141/movieapi/internal/db/manager"
	"github.com/vvka-141/movieapi/internal/movies"
	"github.com/vvka-141/movieapi/internal/testinfra"
)

// TestConnEnv overrides the testcontainer with an existing server.
const TestConnEnv = "MOVIEAPI_TEST_CONN"

var (
	testContainerOnce sync.Once
	testContainerConn string
	testContainerErr  error
)

func getOrStartTestContainer() (string, error) {
	testContainerOnce.Do(func() {
		container, err := testinfra.StartSimplePostgres(context.Background())
		if err != nil {
			testContainerErr = err
			return
		}
		testContainerConn = container.ConnString
	})
	return testContainerConn, testContainerErr
}

// GetTestConnectionString returns the test server connection string.
// Priority: MOVIEAPI_TEST_CONN env var > auto-started testcontainer > skip test.
func GetTestConnectionString(t *testing.T) string {
	t.Helper()

	if connString := os.Getenv(TestConnEnv); connString != "" {
		return connString
	}

	connString, err := getOrStartTestContainer()
	if err != nil {
		t.Skipf("%s not set and Docker unavailable: %v", TestConnEnv, err)
	}
	return connString
}

// SkipIfShort skips the test if running in short mode (-short flag).
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}

// RequireDatabase combines SkipIfShort and GetTestConnectionString.
func RequireDatabase(t *testing.T) string {
	t.Helper()

	SkipIfShort(t)
	return GetTestConnectionString(t)
}

// NewTestDB creates a uniquely named database holding an empty movies
// table and returns a pool on it. The database is dropped on cleanup.
func NewTestDB(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()

	ctx := context.Background()
	serverConn := RequireDatabase(t)
	dbName := "movieapi_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	admin, err := pgxpool.New(ctx, serverConn)
	if err != nil {
		t.Fatalf("connect for test DB creation: %v", err)
	}
	if err := manager.New().Create(ctx, db.NewPoolAdapter(admin), dbName); err != nil {
		admin.Close()
		t.Fatalf("create test database: %v", err)
	}

	cfg, err := pgxpool.ParseConfig(serverConn)
	if err != nil {
		admin.Close()
		t.Fatalf("parse connection string: %v", err)
	}
	cfg.ConnConfig.Database = dbName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		admin.Close()
		t.Fatalf("connect to test database: %v", err)
	}
	if err := movies.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		admin.Close()
		t.Fatalf("create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{dbName}.Sanitize()+" WITH (FORCE)"); err != nil {
			t.Logf("Warning: failed to drop database %s: %v", dbName, err)
		}
	})

	return pool, dbName
}
