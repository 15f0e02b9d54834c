package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
)

// PostingRepository implements usecase.PostingRepository.
type PostingRepository struct {
	pool *pgxpool.Pool
}

// NewPostingRepository creates a new PostingRepository.
func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

const postingColumns = `id, account_id, profit_center_id, source_code_id,
	posting_date, message, journal_entry_number, amount, created_at, updated_at`

// Create inserts a new ledger posting.
func (r *PostingRepository) Create(ctx context.Context, posting *domain.LedgerPosting) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ledger_postings (`+postingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		posting.ID,
		posting.AccountID,
		posting.ProfitCenterID,
		posting.SourceCodeID,
		timeToPgTimestamptz(posting.Date),
		posting.Message,
		posting.JournalEntryNumber,
		decimalToNumeric(posting.Amount),
		timeToPgTimestamptz(posting.CreatedAt),
		timeToPgTimestamptz(posting.UpdatedAt),
	)

	return err
}

// Update rewrites the mutable fields of an existing posting.
func (r *PostingRepository) Update(ctx context.Context, posting *domain.LedgerPosting) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ledger_postings
		SET account_id = $2,
		    profit_center_id = $3,
		    source_code_id = $4,
		    posting_date = $5,
		    message = $6,
		    journal_entry_number = $7,
		    amount = $8,
		    updated_at = $9
		WHERE id = $1`,
		posting.ID,
		posting.AccountID,
		posting.ProfitCenterID,
		posting.SourceCodeID,
		timeToPgTimestamptz(posting.Date),
		posting.Message,
		posting.JournalEntryNumber,
		decimalToNumeric(posting.Amount),
		timeToPgTimestamptz(posting.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrPostingNotFound
	}

	return nil
}

// GetByID retrieves a posting by ID.
func (r *PostingRepository) GetByID(ctx context.Context, id string) (*domain.LedgerPosting, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+postingColumns+`
		FROM ledger_postings
		WHERE id = $1`, id)

	posting, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostingNotFound
		}

		return nil, err
	}

	return posting, nil
}

// ListByDateRange lists postings whose posting date falls in [from, to],
// ordered by posting date then creation time.
func (r *PostingRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.LedgerPosting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postingColumns+`
		FROM ledger_postings
		WHERE posting_date >= $1 AND posting_date <= $2
		ORDER BY posting_date, created_at, id`,
		timeToPgTimestamptz(from), timeToPgTimestamptz(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*domain.LedgerPosting

	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}

		postings = append(postings, posting)
	}

	return postings, rows.Err()
}

func scanPosting(row pgx.Row) (*domain.LedgerPosting, error) {
	var (
		posting     domain.LedgerPosting
		postingDate pgtype.Timestamptz
		amount      pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&posting.ID,
		&posting.AccountID,
		&posting.ProfitCenterID,
		&posting.SourceCodeID,
		&postingDate,
		&posting.Message,
		&posting.JournalEntryNumber,
		&amount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	posting.Date = postingDate.Time
	posting.Amount = numericToDecimal(amount)
	posting.CreatedAt = createdAt.Time
	posting.UpdatedAt = updatedAt.Time

	return &posting, nil
}
