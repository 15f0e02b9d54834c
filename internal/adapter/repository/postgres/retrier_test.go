package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func newTestRetrier() *Retrier {
	r := NewRetrier(zerolog.Nop())
	r.initialInterval = time.Millisecond
	r.maxElapsedTime = 50 * time.Millisecond
	return r
}

func TestRetrier_RecoversFromDeadlock(t *testing.T) {
	r := newTestRetrier()

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: pgErrDeadlockDetected}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetrier_AbortsOnNonTransientError(t *testing.T) {
	r := newTestRetrier()

	boom := errors.New("boom")
	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected single attempt, got %d", attempts)
	}
}

func TestRetrier_GivesUpAfterMaxAttempts(t *testing.T) {
	r := newTestRetrier()

	conflict := &pgconn.PgError{Code: pgErrSerializationFailure}
	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		return conflict
	})

	if !errors.Is(err, conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if attempts != r.maxAttempts {
		t.Fatalf("expected %d attempts, got %d", r.maxAttempts, attempts)
	}
}

func TestIsTransientConflict(t *testing.T) {
	if !isTransientConflict(&pgconn.PgError{Code: pgErrDeadlockDetected}) {
		t.Error("deadlock should be transient")
	}
	if !isTransientConflict(&pgconn.PgError{Code: pgErrSerializationFailure}) {
		t.Error("serialization failure should be transient")
	}
	if isTransientConflict(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation should not be transient")
	}
	if isTransientConflict(errors.New("plain")) {
		t.Error("plain error should not be transient")
	}
}
