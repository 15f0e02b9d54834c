package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is a closed set resolved against the payment_status code table.
type PaymentStatus string

// PaymentType is a closed set resolved against the payment_type code table.
type PaymentType string

const (
	PaymentStatusPaid PaymentStatus = "P"
	PaymentStatusVoid PaymentStatus = "V"

	PaymentTypeACH   PaymentType = "A"
	PaymentTypeCheck PaymentType = "C"
)

// Payment is an accounts-payable payment to a vendor, allocated across
// invoices by its details. Details keep insertion order; order matters
// for report layout, not correctness.
type Payment struct {
	PaymentDate   time.Time
	DateCleared   *time.Time
	DateVoided    *time.Time
	CreatedAt     time.Time
	ID            string
	BankID        string
	VendorID      string
	PaymentNumber string
	Status        PaymentStatus
	Type          PaymentType
	Amount        decimal.Decimal
	Details       []PaymentDetail
}

// WithDetail returns a copy of the payment with the detail appended.
// The receiver is not mutated.
func (p Payment) WithDetail(d PaymentDetail) Payment {
	details := make([]PaymentDetail, 0, len(p.Details)+1)
	details = append(details, p.Details...)
	details = append(details, d)
	p.Details = details

	return p
}

// DetailTotal sums the invoice amounts of all details. The payment's own
// Amount is not required to equal this sum; reconciling the two is a
// caller responsibility.
func (p Payment) DetailTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Details {
		total = total.Add(d.InvoiceAmount)
	}

	return total
}

// DiscountTotal sums the discounts of all details, treating absent
// discounts as zero.
func (p Payment) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Details {
		total = total.Add(d.DiscountOrZero())
	}

	return total
}

// PaymentDetail allocates part of a payment to one invoice, with an
// optional early-payment discount. The invoice is a weak reference.
type PaymentDetail struct {
	CreatedAt      time.Time
	ID             string
	PaymentID      string
	InvoiceID      string
	VendorID       *string
	InvoiceAmount  decimal.Decimal
	DiscountAmount *decimal.Decimal
}

// DiscountOrZero returns the discount with absent normalized to zero.
func (d PaymentDetail) DiscountOrZero() decimal.Decimal {
	return OrZero(d.DiscountAmount)
}
