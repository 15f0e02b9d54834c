package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByID retrieves a GL account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account

	err := r.pool.QueryRow(ctx, `
		SELECT id, account_number, description
		FROM accounts
		WHERE id = $1`, id).
		Scan(&account.ID, &account.Number, &account.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return &account, nil
}

// ProfitCenterRepository implements usecase.ProfitCenterRepository.
type ProfitCenterRepository struct {
	pool *pgxpool.Pool
}

// NewProfitCenterRepository creates a new ProfitCenterRepository.
func NewProfitCenterRepository(pool *pgxpool.Pool) *ProfitCenterRepository {
	return &ProfitCenterRepository{pool: pool}
}

// GetByID retrieves a profit center by ID.
func (r *ProfitCenterRepository) GetByID(ctx context.Context, id string) (*domain.ProfitCenter, error) {
	var pc domain.ProfitCenter

	err := r.pool.QueryRow(ctx, `
		SELECT id, name
		FROM profit_centers
		WHERE id = $1`, id).
		Scan(&pc.ID, &pc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfitCenterNotFound
		}

		return nil, err
	}

	return &pc, nil
}

// SourceCodeRepository implements usecase.SourceCodeRepository.
type SourceCodeRepository struct {
	pool *pgxpool.Pool
}

// NewSourceCodeRepository creates a new SourceCodeRepository.
func NewSourceCodeRepository(pool *pgxpool.Pool) *SourceCodeRepository {
	return &SourceCodeRepository{pool: pool}
}

// GetByID retrieves a source code by ID.
func (r *SourceCodeRepository) GetByID(ctx context.Context, id string) (*domain.SourceCode, error) {
	var sc domain.SourceCode

	err := r.pool.QueryRow(ctx, `
		SELECT id, code, description
		FROM source_codes
		WHERE id = $1`, id).
		Scan(&sc.ID, &sc.Code, &sc.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSourceCodeNotFound
		}

		return nil, err
	}

	return &sc, nil
}
