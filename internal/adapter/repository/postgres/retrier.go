package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// PostgreSQL error codes that indicate a transient conflict worth retrying.
const (
	pgErrDeadlockDetected     = "40P01"
	pgErrSerializationFailure = "40001"
)

// Retrier retries transactional writes that fail on deadlock or
// serialization conflicts. It implements usecase.Retrier.
type Retrier struct {
	maxAttempts     int
	initialInterval time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetrier creates a Retrier with defaults suited to short payment
// transactions.
func NewRetrier(logger zerolog.Logger) *Retrier {
	return &Retrier{
		maxAttempts:     4,
		initialInterval: 25 * time.Millisecond,
		maxElapsedTime:  5 * time.Second,
		logger:          logger,
	}
}

// Retry runs operation, backing off exponentially between attempts. Errors
// other than transient PostgreSQL conflicts abort immediately.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval
	policy.MaxElapsedTime = r.maxElapsedTime

	attempt := 0

	return backoff.Retry(func() error {
		attempt++

		err := operation()
		if err == nil {
			return nil
		}

		if !isTransientConflict(err) || attempt >= r.maxAttempts {
			return backoff.Permanent(err)
		}

		r.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("transient database conflict, retrying")

		return err
	}, backoff.WithContext(policy, ctx))
}

func isTransientConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrDeadlockDetected || pgErr.Code == pgErrSerializationFailure
}
