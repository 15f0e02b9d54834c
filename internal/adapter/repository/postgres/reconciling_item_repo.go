package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
)

// ReconcilingItemRepository implements usecase.ReconcilingItemRepository.
type ReconcilingItemRepository struct {
	pool *pgxpool.Pool
}

// NewReconcilingItemRepository creates a new ReconcilingItemRepository.
func NewReconcilingItemRepository(pool *pgxpool.Pool) *ReconcilingItemRepository {
	return &ReconcilingItemRepository{pool: pool}
}

// ListByBank lists a bank's open reconciling items in creation order.
// Creation order drives the first-seen grouping of the report.
func (r *ReconcilingItemRepository) ListByBank(ctx context.Context, bankID string) ([]domain.ReconcilingItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, item_type, amount
		FROM reconciling_items
		WHERE bank_id = $1
		ORDER BY created_at, id`, bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ReconcilingItem

	for rows.Next() {
		var (
			item   domain.ReconcilingItem
			amount pgtype.Numeric
		)

		if err := rows.Scan(&item.ID, &item.Type, &amount); err != nil {
			return nil, err
		}

		item.Amount = numericToDecimal(amount)
		items = append(items, item)
	}

	return items, rows.Err()
}
