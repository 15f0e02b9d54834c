package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a payment inside the given transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO payments (id, bank_id, vendor_id, payment_number,
			payment_date, date_cleared, date_voided, amount, status,
			payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		payment.ID,
		payment.BankID,
		payment.VendorID,
		payment.PaymentNumber,
		timeToPgTimestamptz(payment.PaymentDate),
		timePtrToPgTimestamptz(payment.DateCleared),
		timePtrToPgTimestamptz(payment.DateVoided),
		decimalToNumeric(payment.Amount),
		string(payment.Status),
		string(payment.Type),
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// CreateDetail inserts a payment detail inside the given transaction.
func (r *PaymentRepository) CreateDetail(ctx context.Context, tx usecase.Transaction, detail *domain.PaymentDetail) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO payment_details (id, payment_id, invoice_id, vendor_id,
			invoice_amount, discount_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		detail.ID,
		detail.PaymentID,
		detail.InvoiceID,
		detail.VendorID,
		decimalToNumeric(detail.InvoiceAmount),
		decimalPtrToNumeric(detail.DiscountAmount),
		timeToPgTimestamptz(detail.CreatedAt),
	)

	return err
}

// GetByID retrieves a payment with its details in insertion order.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1`, id)

	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	details, err := r.listDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.Details = details

	return payment, nil
}

// ListByVendor lists a vendor's payments, newest first, with pagination.
// Details are not loaded for listings.
func (r *PaymentRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE vendor_id = $1
		ORDER BY payment_date DESC, id DESC
		LIMIT $2 OFFSET $3`,
		vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

const paymentColumns = `id, bank_id, vendor_id, payment_number, payment_date,
	date_cleared, date_voided, amount, status, payment_type, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		payment     domain.Payment
		paymentDate pgtype.Timestamptz
		dateCleared pgtype.Timestamptz
		dateVoided  pgtype.Timestamptz
		amount      pgtype.Numeric
		status      string
		paymentType string
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&payment.ID,
		&payment.BankID,
		&payment.VendorID,
		&payment.PaymentNumber,
		&paymentDate,
		&dateCleared,
		&dateVoided,
		&amount,
		&status,
		&paymentType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	payment.PaymentDate = paymentDate.Time
	payment.DateCleared = pgTimestamptzToTimePtr(dateCleared)
	payment.DateVoided = pgTimestamptzToTimePtr(dateVoided)
	payment.Amount = numericToDecimal(amount)
	payment.Status = domain.PaymentStatus(status)
	payment.Type = domain.PaymentType(paymentType)
	payment.CreatedAt = createdAt.Time

	return &payment, nil
}

func (r *PaymentRepository) listDetails(ctx context.Context, paymentID string) ([]domain.PaymentDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, payment_id, invoice_id, vendor_id, invoice_amount,
			discount_amount, created_at
		FROM payment_details
		WHERE payment_id = $1
		ORDER BY created_at, id`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.PaymentDetail

	for rows.Next() {
		var (
			detail    domain.PaymentDetail
			amount    pgtype.Numeric
			discount  pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&detail.ID,
			&detail.PaymentID,
			&detail.InvoiceID,
			&detail.VendorID,
			&amount,
			&discount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		detail.InvoiceAmount = numericToDecimal(amount)
		detail.DiscountAmount = numericToDecimalPtr(discount)
		detail.CreatedAt = createdAt.Time

		details = append(details, detail)
	}

	return details, rows.Err()
}
