package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
)

// AccountRepository resolves GL accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// ProfitCenterRepository resolves profit centers.
type ProfitCenterRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ProfitCenter, error)
}

// SourceCodeRepository resolves source codes.
type SourceCodeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SourceCode, error)
}

// VendorRepository resolves vendors.
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
}

// BankRepository resolves banks and their GL-side balance.
type BankRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Bank, error)
	GetGLBalance(ctx context.Context, bankID string) (decimal.Decimal, error)
}

// InvoiceRepository resolves vendor invoices.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
}

// EnumRepository resolves closed code sets by (domain, code).
type EnumRepository interface {
	GetByCode(ctx context.Context, enumDomain, code string) (*domain.EnumValue, error)
}

// PostingRepository defines data access for ledger postings.
type PostingRepository interface {
	Create(ctx context.Context, posting *domain.LedgerPosting) error
	Update(ctx context.Context, posting *domain.LedgerPosting) error
	GetByID(ctx context.Context, id string) (*domain.LedgerPosting, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.LedgerPosting, error)
}

// PaymentRepository defines data access for payments and their details.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	CreateDetail(ctx context.Context, tx Transaction, detail *domain.PaymentDetail) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Payment, error)
}

// ReconcilingItemRepository defines data access for reconciling items.
type ReconcilingItemRepository interface {
	ListByBank(ctx context.Context, bankID string) ([]domain.ReconcilingItem, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
