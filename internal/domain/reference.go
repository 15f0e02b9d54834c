package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a general-ledger account postings are attributed to.
type Account struct {
	ID          string
	Number      string
	Description string
}

// ProfitCenter is the organizational unit a posting or payment belongs to.
type ProfitCenter struct {
	ID   string
	Name string
}

// SourceCode classifies the origin of a GL posting.
type SourceCode struct {
	ID          string
	Code        string
	Description string
}

// Vendor is a party money is owed to.
type Vendor struct {
	ID   string
	Name string
}

// Bank is a bank account with a GL-side balance to reconcile against.
type Bank struct {
	ID          string
	Name        string
	GLAccountID string
}

// Invoice is a vendor invoice payments allocate against. Payments hold a
// weak reference to it; invoices are owned elsewhere.
type Invoice struct {
	ID            string
	VendorID      string
	InvoiceNumber string
	Amount        decimal.Decimal
}

// Enum code domains. Status, type and reconciliation-type codes resolve
// against closed code tables keyed by (domain, code).
const (
	EnumPaymentStatus      = "payment_status"
	EnumPaymentType        = "payment_type"
	EnumReconciliationType = "reconciliation_type"
)

// EnumValue is one row of a closed code table.
type EnumValue struct {
	ID          string
	Domain      string
	Code        string
	Description string
}
