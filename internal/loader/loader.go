// Package loader bootstraps the movies table from the IMDb top-1000 CSV.
//
// A load normalises the source into a staging file next to it, then streams
// that file through COPY FROM STDIN inside one transaction. Either every
// row is committed or none is. Concurrent loads into the same table are
// not coordinated.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vvka-141/movieapi/internal/metrics"
	"github.com/vvka-141/movieapi/internal/movies"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// copySQL uses CSV defaults: an unquoted empty field is NULL, so the
// literal sentinel in text columns is stored as text.
var copySQL = fmt.Sprintf("COPY %s(%s) FROM STDIN WITH CSV", movieapi.TableName, strings.Join(movies.Columns, ", "))

// DB is the subset of *pgxpool.Pool the loader needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Result describes a finished load.
type Result struct {
	Rows    int64
	Skipped bool
}

// Loader performs bulk loads. It holds no state between calls.
type Loader struct {
	db     DB
	logger movieapi.Logger
}

// New creates a Loader.
func New(db DB, logger movieapi.Logger) *Loader {
	return &Loader{db: db, logger: logger}
}

// Load creates the movies table if needed and copies every row of csvPath
// into it. A missing file is reported and skipped, not an error.
func (l *Loader) Load(ctx context.Context, csvPath string) (Result, error) {
	if _, err := os.Stat(csvPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Info("File %s does not exist.", csvPath)
			return Result{Skipped: true}, nil
		}
		return Result{}, fmt.Errorf("stat %s: %w", csvPath, errors.Join(movieapi.ErrLoadFailed, err))
	}

	if err := movies.EnsureSchema(ctx, l.db); err != nil {
		return Result{}, fmt.Errorf("%w: %w", movieapi.ErrLoadFailed, err)
	}
	l.logger.Info("Tables created!")

	start := time.Now()

	staging, rows, err := stage(csvPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", movieapi.ErrLoadFailed, err)
	}
	defer func() {
		staging.Close()
		if err := os.Remove(staging.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			l.logger.Error("failed to delete temporary file %s: %v", staging.Name(), err)
			return
		}
		l.logger.Verbose("Deleted temporary file %s.", staging.Name())
	}()
	l.logger.Verbose("staged %d rows in %s", rows, staging.Name())

	copied, err := l.copy(ctx, staging)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", movieapi.ErrLoadFailed, err)
	}

	metrics.RecordLoad(copied, time.Since(start))
	l.logger.Info("Populated the movies table!")
	return Result{Rows: copied}, nil
}

// copy streams the staging file in one transaction.
func (l *Loader) copy(ctx context.Context, staging *os.File) (int64, error) {
	if _, err := staging.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind staging file: %w", err)
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Conn().PgConn().CopyFrom(ctx, staging, copySQL)
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", movieapi.TableName, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected(), nil
}
