package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
)

// EnumRepository implements usecase.EnumRepository against the closed
// code tables.
type EnumRepository struct {
	pool *pgxpool.Pool
}

// NewEnumRepository creates a new EnumRepository.
func NewEnumRepository(pool *pgxpool.Pool) *EnumRepository {
	return &EnumRepository{pool: pool}
}

// GetByCode resolves a code within an enum domain.
func (r *EnumRepository) GetByCode(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error) {
	var value domain.EnumValue

	err := r.pool.QueryRow(ctx, `
		SELECT id, domain, code, description
		FROM enum_values
		WHERE domain = $1 AND code = $2`, enumDomain, code).
		Scan(&value.ID, &value.Domain, &value.Code, &value.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnumValueNotFound
		}

		return nil, err
	}

	return &value, nil
}
