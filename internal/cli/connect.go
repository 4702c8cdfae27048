package cli

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/movieapi/internal/db"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// connect opens a pool for cfg. The returned release closes the pool and,
// for Cloud SQL, the dialer behind it.
func connect(ctx context.Context, cfg *movieapi.ConnectionConfig, logger movieapi.Logger) (*pgxpool.Pool, func(), error) {
	connector, err := db.NewConnector(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		if c, ok := connector.(io.Closer); ok {
			c.Close()
		}
		return nil, nil, err
	}

	release := func() {
		pool.Close()
		if c, ok := connector.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Error("failed to close connector: %v", err)
			}
		}
	}
	return pool, release, nil
}
