package movieapi

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector opens the pool the record store and loader run on. Each auth
// method (password, RDS IAM, Entra ID, Cloud SQL IAM) has its own
// implementation; callers close the pool.
type Connector interface {
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}
