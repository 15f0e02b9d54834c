package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
)

// BankRepository implements usecase.BankRepository.
type BankRepository struct {
	pool *pgxpool.Pool
}

// NewBankRepository creates a new BankRepository.
func NewBankRepository(pool *pgxpool.Pool) *BankRepository {
	return &BankRepository{pool: pool}
}

// GetByID retrieves a bank by ID.
func (r *BankRepository) GetByID(ctx context.Context, id string) (*domain.Bank, error) {
	var bank domain.Bank

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, gl_account_id
		FROM banks
		WHERE id = $1`, id).
		Scan(&bank.ID, &bank.Name, &bank.GLAccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankNotFound
		}

		return nil, err
	}

	return &bank, nil
}

// GetGLBalance computes the GL-side balance of a bank by summing all
// postings against its GL account. Signed amounts cancel naturally.
func (r *BankRepository) GetGLBalance(ctx context.Context, bankID string) (decimal.Decimal, error) {
	var balance pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM banks b
		LEFT JOIN ledger_postings p ON p.account_id = b.gl_account_id
		WHERE b.id = $1
		GROUP BY b.id`, bankID).
		Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrBankNotFound
		}

		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}
