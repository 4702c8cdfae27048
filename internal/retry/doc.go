// Package retry wraps database connection attempts with exponential
// backoff. Only errors the classifier recognises as transient are retried;
// everything else is returned on the first failure.
//
//	classifier := retry.NewPostgreSQLErrorClassifier()
//	strategy := retry.NewExponentialBackoff(cfg.ConnectRetries)
//	err := retry.NewExecutor(classifier, strategy).Execute(ctx, connect)
//
// A strategy with zero attempts makes Execute a single call, which is the
// service default.
package retry
