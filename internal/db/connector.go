package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/movieapi/internal/retry"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns bounds the pool shared by all HTTP handlers.
	DefaultMaxConns = 10

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	DefaultMaxConnIdleTime = 30 * time.Minute
)

func configurePool(poolConfig *pgxpool.Config, logger movieapi.Logger) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		logger.Verbose("postgres %s: %s", strings.ToLower(notice.Severity), notice.Message)
	}
}

// newRetryExecutor builds the executor shared by all connectors. With the
// default of zero retries every connection attempt is made exactly once.
func newRetryExecutor(config *movieapi.ConnectionConfig, logger movieapi.Logger) *retry.Executor {
	strategy := retry.NewExponentialBackoff(config.ConnectRetries,
		retry.WithInitialDelay(movieapi.DefaultRetryInitialDelay),
		retry.WithMaxDelay(movieapi.DefaultRetryMaxDelay),
	)
	return retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), strategy).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Info("connection attempt %d failed, retrying in %v: %v", attempt+1, delay, err)
		})
}

// StandardConnector implements the Connector interface for standard
// username/password authentication.
type StandardConnector struct {
	config        *movieapi.ConnectionConfig
	logger        movieapi.Logger
	retryExecutor *retry.Executor
}

// NewStandardConnector creates a new StandardConnector with the given configuration.
func NewStandardConnector(config *movieapi.ConnectionConfig, logger movieapi.Logger) *StandardConnector {
	return &StandardConnector{
		config:        config,
		logger:        logger,
		retryExecutor: newRetryExecutor(config, logger),
	}
}

// Connect establishes a connection pool and verifies it with a ping.
func (c *StandardConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	return openPool(ctx, c.retryExecutor, c.config, c.logger, func(context.Context) (*movieapi.ConnectionConfig, error) {
		return c.config, nil
	})
}

// openPool runs one pool creation per attempt. resolve supplies the
// effective config for each attempt so token-based auth can refresh its
// password between retries.
func openPool(
	ctx context.Context,
	executor *retry.Executor,
	base *movieapi.ConnectionConfig,
	logger movieapi.Logger,
	resolve func(context.Context) (*movieapi.ConnectionConfig, error),
) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := executor.Execute(ctx, func(ctx context.Context) error {
		cfg, err := resolve(ctx)
		if err != nil {
			return err
		}

		logger.Verbose("connecting to %s", MaskedConnectionString(cfg))
		poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(cfg))
		if err != nil {
			return fmt.Errorf("failed to parse connection config: %w", err)
		}
		configurePool(poolConfig, logger)

		p, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return wrapConnectionError(err, base.Host, base.Port, base.Database)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return wrapConnectionError(err, base.Host, base.Port, base.Database)
		}

		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Verbose("connected to %s/%s", net.JoinHostPort(base.Host, strconv.Itoa(base.Port)), base.Database)
	return pool, nil
}

// NewConnector is a factory function that creates the appropriate Connector
// based on the ConnectionConfig's AuthMethod.
func NewConnector(config *movieapi.ConnectionConfig, logger movieapi.Logger) (movieapi.Connector, error) {
	switch config.AuthMethod {
	case movieapi.AuthMethodStandard:
		return NewStandardConnector(config, logger), nil
	case movieapi.AuthMethodAWSIAM:
		return newAWSConnector(config, logger)
	case movieapi.AuthMethodGoogleIAM:
		return newGoogleConnector(config, logger)
	case movieapi.AuthMethodAzureEntraID:
		return newAzureConnector(config, logger)
	default:
		return nil, fmt.Errorf("unsupported auth method %v: %w", config.AuthMethod, movieapi.ErrUnsupportedAuthMethod)
	}
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
// The result always wraps movieapi.ErrConnectionFailed.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	var hint string
	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		hint = fmt.Sprintf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong DB_HOSTNAME or PORT`, addr, host, port)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		hint = fmt.Sprintf(`cannot resolve host "%s"

Possible causes:
  - DB_HOSTNAME is misspelled
  - DNS is not configured or reachable`, host)

	case strings.Contains(errStr, "password authentication failed"):
		hint = fmt.Sprintf(`password authentication failed for database "%s"

Possible causes:
  - Wrong PASSWORD or USERNAME
  - User does not have access to the database`, database)

	case strings.Contains(errStr, "does not exist"):
		hint = fmt.Sprintf(`database "%s" does not exist

To create it:
  movieapi createdb`, database)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		hint = fmt.Sprintf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Firewall silently dropping packets`, addr)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		hint = `SSL/TLS connection error

Possible causes:
  - Server requires SSL but SSLMODE is "disable"
  - Certificate verification failed (try SSLMODE=require)`

	case strings.Contains(errStr, "too many connections"):
		hint = fmt.Sprintf(`too many connections to database "%s"

Possible causes:
  - max_connections limit reached in postgresql.conf
  - Other service instances holding the pool`, database)

	default:
		return fmt.Errorf("%w: %w", movieapi.ErrConnectionFailed, err)
	}

	return fmt.Errorf("%w: %s\n\nOriginal error: %w", movieapi.ErrConnectionFailed, hint, err)
}

// newAWSConnector creates a token-based connector with the AWS IAM token provider.
func newAWSConnector(config *movieapi.ConnectionConfig, logger movieapi.Logger) (movieapi.Connector, error) {
	endpoint := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))

	tokenProvider, err := NewAWSIAMTokenProvider(endpoint, config.AWSRegion, config.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS IAM token provider: %w", errors.Join(movieapi.ErrInvalidConfig, err))
	}

	return NewTokenBasedConnector(config, tokenProvider, "AWS IAM", logger), nil
}

// newGoogleConnector creates a GoogleCloudSQLConnector for Google Cloud SQL IAM authentication.
func newGoogleConnector(config *movieapi.ConnectionConfig, logger movieapi.Logger) (movieapi.Connector, error) {
	if config.GoogleInstance == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires GOOGLE_INSTANCE (project:region:instance): %w", movieapi.ErrInvalidConfig)
	}
	if config.Username == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires USERNAME: %w", movieapi.ErrInvalidConfig)
	}

	return NewGoogleCloudSQLConnector(config, config.GoogleInstance, logger), nil
}

// newAzureConnector creates a token-based connector with the Azure Entra ID token provider.
// If explicit credentials (tenant, client, secret) are provided, uses Service Principal auth.
// Otherwise, falls back to DefaultAzureCredential chain.
func newAzureConnector(config *movieapi.ConnectionConfig, logger movieapi.Logger) (movieapi.Connector, error) {
	var tokenProvider TokenProvider
	var err error

	if config.AzureTenantID != "" && config.AzureClientID != "" && config.AzureClientSecret != "" {
		tokenProvider, err = NewAzureServicePrincipalProvider(
			config.AzureTenantID,
			config.AzureClientID,
			config.AzureClientSecret,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Service Principal provider: %w", err)
		}
	} else {
		tokenProvider, err = NewAzureDefaultCredentialProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Default Credential provider: %w", err)
		}
	}

	return NewTokenBasedConnector(config, tokenProvider, "Azure", logger), nil
}
