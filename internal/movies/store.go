package movies

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the record store as seen by the HTTP layer.
type Repository interface {
	List(ctx context.Context, f Filter) ([]Movie, error)
	Get(ctx context.Context, id int64) (Movie, error)
	Create(ctx context.Context, p Patch) (Movie, error)
	Update(ctx context.Context, id int64, p Patch) (Movie, error)
	Delete(ctx context.Context, id int64) error
}

// Execer runs statements that return no rows.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Execer
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SchemaDDL creates the movies table if it does not exist.
const SchemaDDL = `CREATE TABLE IF NOT EXISTS movies (
    id SERIAL PRIMARY KEY,
    poster_link TEXT,
    series_title TEXT NOT NULL,
    released_year INTEGER,
    certificate TEXT,
    runtime TEXT,
    genre TEXT,
    imdb_rating FLOAT,
    overview TEXT,
    meta_score INTEGER,
    director TEXT,
    star1 TEXT,
    star2 TEXT,
    star3 TEXT,
    star4 TEXT,
    no_of_votes INTEGER,
    gross TEXT
)`

var selectList = "id, " + strings.Join(Columns, ", ")

// EnsureSchema runs SchemaDDL on q.
func EnsureSchema(ctx context.Context, q Execer) error {
	if _, err := q.Exec(ctx, SchemaDDL); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

// Store implements Repository on PostgreSQL. Safe for concurrent use when
// backed by a pool.
type Store struct {
	db Querier
}

// NewStore creates a Store. Callers own the pool's lifetime.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

// EnsureSchema creates the movies table if needed.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return EnsureSchema(ctx, s.db)
}

// List returns matching rows in storage order.
func (s *Store) List(ctx context.Context, f Filter) ([]Movie, error) {
	where, args := f.Where(1)
	rows, err := s.db.Query(ctx, "SELECT "+selectList+" FROM movies"+where, args...)
	if err != nil {
		return nil, mapError("list movies", err)
	}
	defer rows.Close()

	movies := []Movie{}
	for rows.Next() {
		var m Movie
		if err := rows.Scan(m.scanTargets()...); err != nil {
			return nil, mapError("scan movie", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list movies", err)
	}
	return movies, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Movie, error) {
	var m Movie
	err := s.db.QueryRow(ctx, "SELECT "+selectList+" FROM movies WHERE id = $1", id).Scan(m.scanTargets()...)
	if err != nil {
		return Movie{}, mapError("get movie", err)
	}
	return m, nil
}

// Create inserts p; unset fields are stored as NULL.
func (s *Store) Create(ctx context.Context, p Patch) (Movie, error) {
	if err := p.ValidateCreate(); err != nil {
		return Movie{}, err
	}

	var cols, placeholders []string
	var args []any
	for _, a := range p.assignments() {
		if !a.set {
			continue
		}
		args = append(args, a.value)
		cols = append(cols, a.column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := fmt.Sprintf("INSERT INTO movies (%s) VALUES (%s) RETURNING %s",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "), selectList)

	var m Movie
	if err := s.db.QueryRow(ctx, query, args...).Scan(m.scanTargets()...); err != nil {
		return Movie{}, mapError("create movie", err)
	}
	return m, nil
}

// Update overwrites only the fields set in p. An empty patch returns the
// current row.
func (s *Store) Update(ctx context.Context, id int64, p Patch) (Movie, error) {
	if err := p.ValidateUpdate(); err != nil {
		return Movie{}, err
	}
	if p.IsEmpty() {
		return s.Get(ctx, id)
	}

	var sets []string
	args := []any{id}
	for _, a := range p.assignments() {
		if !a.set {
			continue
		}
		args = append(args, a.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", a.column, len(args)))
	}

	query := fmt.Sprintf("UPDATE movies SET %s WHERE id = $1 RETURNING %s", strings.Join(sets, ", "), selectList)

	var m Movie
	if err := s.db.QueryRow(ctx, query, args...).Scan(m.scanTargets()...); err != nil {
		return Movie{}, mapError("update movie", err)
	}
	return m, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return mapError("delete movie", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*Store)(nil)
