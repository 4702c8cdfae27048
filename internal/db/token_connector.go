package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vvka-141/movieapi/internal/retry"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

// tokenExpiryWarning is how close to expiry a freshly issued token must be
// before a warning is logged.
const tokenExpiryWarning = 5 * time.Minute

// TokenBasedConnector implements the Connector interface for cloud providers
// that authenticate via short-lived tokens (AWS IAM, Azure Entra ID).
// The token is acquired from a TokenProvider and used as the PostgreSQL password.
type TokenBasedConnector struct {
	config        *movieapi.ConnectionConfig
	tokenProvider TokenProvider
	retryExecutor *retry.Executor
	providerName  string
	logger        movieapi.Logger
}

// NewTokenBasedConnector creates a connector that uses a TokenProvider for authentication.
// providerName is used in error/warning messages (e.g., "AWS IAM", "Azure").
func NewTokenBasedConnector(config *movieapi.ConnectionConfig, tokenProvider TokenProvider, providerName string, logger movieapi.Logger) *TokenBasedConnector {
	return &TokenBasedConnector{
		config:        config,
		tokenProvider: tokenProvider,
		retryExecutor: newRetryExecutor(config, logger),
		providerName:  providerName,
		logger:        logger,
	}
}

// Connect acquires a fresh token for every attempt.
func (c *TokenBasedConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	c.logger.Verbose("authenticating with %s", c.tokenProvider)
	return openPool(ctx, c.retryExecutor, c.config, c.logger, c.withToken)
}

func (c *TokenBasedConnector) withToken(ctx context.Context) (*movieapi.ConnectionConfig, error) {
	token, expiresOn, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire %s token: %w", c.providerName, err)
	}

	if remaining := time.Until(expiresOn); remaining < tokenExpiryWarning {
		c.logger.Info("Warning: %s token expires in %v", c.providerName, remaining.Round(time.Second))
	}

	configWithToken := *c.config
	configWithToken.Password = token
	return &configWithToken, nil
}
