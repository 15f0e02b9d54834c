package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// RecordPostingRequest represents a request to record a ledger posting.
// A non-negative amount is a debit, a negative amount a credit.
type RecordPostingRequest struct {
	AccountID          string          `json:"account_id"`
	ProfitCenterID     string          `json:"profit_center_id"`
	SourceCodeID       *string         `json:"source_code_id,omitempty"`
	Date               time.Time       `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	Message            *string         `json:"message,omitempty"`
	JournalEntryNumber *string         `json:"journal_entry_number,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPostingRequest) ToUseCaseInput() usecase.RecordPostingInput {
	return usecase.RecordPostingInput{
		AccountID:          r.AccountID,
		ProfitCenterID:     r.ProfitCenterID,
		SourceCodeID:       r.SourceCodeID,
		Date:               r.Date,
		Amount:             r.Amount,
		Message:            r.Message,
		JournalEntryNumber: r.JournalEntryNumber,
	}
}

// CreatePaymentRequest represents a request to create a payment.
type CreatePaymentRequest struct {
	BankID        string          `json:"bank_id"`
	VendorID      string          `json:"vendor_id"`
	StatusCode    string          `json:"status_code"`
	TypeCode      string          `json:"type_code"`
	PaymentNumber string          `json:"payment_number"`
	PaymentDate   time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePaymentRequest) ToUseCaseInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		BankID:        r.BankID,
		VendorID:      r.VendorID,
		StatusCode:    r.StatusCode,
		TypeCode:      r.TypeCode,
		PaymentNumber: r.PaymentNumber,
		PaymentDate:   r.PaymentDate,
		Amount:        r.Amount,
	}
}

// AllocateDetailRequest represents a request to allocate part of a
// payment to an invoice.
type AllocateDetailRequest struct {
	InvoiceID      string           `json:"invoice_id"`
	VendorID       *string          `json:"vendor_id,omitempty"`
	InvoiceAmount  decimal.Decimal  `json:"invoice_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount,omitempty"`
}

// ToUseCaseInput converts to use case input. The payment ID comes from
// the URL, not the body.
func (r *AllocateDetailRequest) ToUseCaseInput(paymentID string) usecase.AllocateDetailInput {
	return usecase.AllocateDetailInput{
		PaymentID:      paymentID,
		InvoiceID:      r.InvoiceID,
		VendorID:       r.VendorID,
		InvoiceAmount:  r.InvoiceAmount,
		DiscountAmount: r.DiscountAmount,
	}
}

// ReconcileRequest represents an ad-hoc reconciliation over
// caller-supplied items.
type ReconcileRequest struct {
	GLBalance decimal.Decimal        `json:"gl_balance"`
	Items     []ReconcileRequestItem `json:"items"`
}

// ReconcileRequestItem is one reconciling item of an ad-hoc request.
type ReconcileRequestItem struct {
	ID     string          `json:"id,omitempty"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// ToDomain converts the request items to domain reconciling items,
// preserving order.
func (r *ReconcileRequest) ToDomain() []domain.ReconcilingItem {
	items := make([]domain.ReconcilingItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.ReconcilingItem{
			ID:     item.ID,
			Type:   item.Type,
			Amount: item.Amount,
		}
	}

	return items
}
