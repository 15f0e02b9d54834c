package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// KindNotFound means a supplied reference did not resolve.
	KindNotFound ErrorKind = "not_found"
	// KindMissing means a required value was absent.
	KindMissing ErrorKind = "missing"
)

// ValidationError describes one failing field.
type ValidationError struct {
	Field string
	Kind  ErrorKind
	Value string
}

func (e ValidationError) Error() string {
	if e.Kind == KindMissing {
		return fmt.Sprintf("%s: required value missing", e.Field)
	}

	return fmt.Sprintf("%s: %q not found", e.Field, e.Value)
}

// ValidationErrors is the accumulated result of validating one request.
// Callers collect every failing field before returning, so a user fixing
// one field sees all other problems in the same response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}

	return strings.Join(msgs, "; ")
}

// NotFound records an unresolved reference.
func NotFound(field, value string) ValidationError {
	return ValidationError{Field: field, Kind: KindNotFound, Value: value}
}

// Missing records an absent required value.
func Missing(field string) ValidationError {
	return ValidationError{Field: field, Kind: KindMissing}
}

// OrZero normalizes a nullable amount for summation. Absent means zero,
// never "unknown" or excluded.
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	return *d
}
