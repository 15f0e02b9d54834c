package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apbooks/glcore/internal/domain"
)

// VendorRepository implements usecase.VendorRepository.
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository creates a new VendorRepository.
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// GetByID retrieves a vendor by ID.
func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	var vendor domain.Vendor

	err := r.pool.QueryRow(ctx, `
		SELECT id, name
		FROM vendors
		WHERE id = $1`, id).
		Scan(&vendor.ID, &vendor.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}

		return nil, err
	}

	return &vendor, nil
}

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var (
		invoice domain.Invoice
		amount  pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, vendor_id, invoice_number, amount
		FROM invoices
		WHERE id = $1`, id).
		Scan(&invoice.ID, &invoice.VendorID, &invoice.InvoiceNumber, &amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	invoice.Amount = numericToDecimal(amount)

	return &invoice, nil
}
