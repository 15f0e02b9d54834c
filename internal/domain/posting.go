package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerPosting is one signed-amount line in the general ledger. The
// amount carries both magnitude and debit/credit classification:
// non-negative is a debit, negative is a credit. The amount is stored
// exactly as given; callers needing 2-decimal money round before
// recording.
type LedgerPosting struct {
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Date               time.Time
	ID                 string
	AccountID          string
	ProfitCenterID     string
	SourceCodeID       *string
	Message            *string
	JournalEntryNumber *string
	Amount             decimal.Decimal
}

// IsDebit reports whether the posting is on the debit side.
func (p *LedgerPosting) IsDebit() bool {
	return !p.Amount.IsNegative()
}

// IsCredit reports whether the posting is on the credit side.
func (p *LedgerPosting) IsCredit() bool {
	return p.Amount.IsNegative()
}
