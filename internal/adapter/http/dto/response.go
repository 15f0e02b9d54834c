package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
)

// PostingResponse represents a ledger posting in API responses.
type PostingResponse struct {
	ID                 string          `json:"id"`
	AccountID          string          `json:"account_id"`
	ProfitCenterID     string          `json:"profit_center_id"`
	SourceCodeID       *string         `json:"source_code_id,omitempty"`
	Date               time.Time       `json:"date"`
	Amount             decimal.Decimal `json:"amount"`
	Message            *string         `json:"message,omitempty"`
	JournalEntryNumber *string         `json:"journal_entry_number,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PostingFromDomain converts a domain posting to a response.
func PostingFromDomain(p *domain.LedgerPosting) *PostingResponse {
	return &PostingResponse{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		ProfitCenterID:     p.ProfitCenterID,
		SourceCodeID:       p.SourceCodeID,
		Date:               p.Date,
		Amount:             p.Amount,
		Message:            p.Message,
		JournalEntryNumber: p.JournalEntryNumber,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID            string                  `json:"id"`
	BankID        string                  `json:"bank_id"`
	VendorID      string                  `json:"vendor_id"`
	PaymentNumber string                  `json:"payment_number"`
	Status        string                  `json:"status"`
	Type          string                  `json:"type"`
	PaymentDate   time.Time               `json:"payment_date"`
	DateCleared   *time.Time              `json:"date_cleared,omitempty"`
	DateVoided    *time.Time              `json:"date_voided,omitempty"`
	Amount        decimal.Decimal         `json:"amount"`
	Details       []PaymentDetailResponse `json:"details,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:            p.ID,
		BankID:        p.BankID,
		VendorID:      p.VendorID,
		PaymentNumber: p.PaymentNumber,
		Status:        string(p.Status),
		Type:          string(p.Type),
		PaymentDate:   p.PaymentDate,
		DateCleared:   p.DateCleared,
		DateVoided:    p.DateVoided,
		Amount:        p.Amount,
		CreatedAt:     p.CreatedAt,
	}

	for _, d := range p.Details {
		resp.Details = append(resp.Details, *PaymentDetailFromDomain(&d))
	}

	return resp
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}

	return result
}

// PaymentDetailResponse represents a payment detail in API responses.
type PaymentDetailResponse struct {
	ID             string           `json:"id"`
	PaymentID      string           `json:"payment_id"`
	InvoiceID      string           `json:"invoice_id"`
	VendorID       *string          `json:"vendor_id,omitempty"`
	InvoiceAmount  decimal.Decimal  `json:"invoice_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// PaymentDetailFromDomain converts a domain payment detail to a response.
func PaymentDetailFromDomain(d *domain.PaymentDetail) *PaymentDetailResponse {
	return &PaymentDetailResponse{
		ID:             d.ID,
		PaymentID:      d.PaymentID,
		InvoiceID:      d.InvoiceID,
		VendorID:       d.VendorID,
		InvoiceAmount:  d.InvoiceAmount,
		DiscountAmount: d.DiscountAmount,
		CreatedAt:      d.CreatedAt,
	}
}

// ReconciliationGroupResponse is one type group of a reconciliation
// report.
type ReconciliationGroupResponse struct {
	Type      string                 `json:"type"`
	Items     []ReconcileRequestItem `json:"items"`
	SumAmount decimal.Decimal        `json:"sum_amount"`
}

// ReconciliationReportResponse represents a reconciliation report in API
// responses.
type ReconciliationReportResponse struct {
	Groups                       []ReconciliationGroupResponse `json:"groups"`
	GLBalance                    decimal.Decimal               `json:"gl_balance"`
	TotalOutstandingItems        decimal.Decimal               `json:"total_outstanding_items"`
	ComputedBankStatementBalance decimal.Decimal               `json:"computed_bank_statement_balance"`
}

// ReconciliationReportFromDomain converts a domain report to a response.
func ReconciliationReportFromDomain(r *domain.ReconciliationReport) *ReconciliationReportResponse {
	groups := make([]ReconciliationGroupResponse, len(r.Groups))
	for i, g := range r.Groups {
		items := make([]ReconcileRequestItem, len(g.Items))
		for j, item := range g.Items {
			items[j] = ReconcileRequestItem{
				ID:     item.ID,
				Type:   item.Type,
				Amount: item.Amount,
			}
		}

		groups[i] = ReconciliationGroupResponse{
			Type:      g.Type,
			Items:     items,
			SumAmount: g.SumAmount,
		}
	}

	return &ReconciliationReportResponse{
		Groups:                       groups,
		GLBalance:                    r.GLBalance,
		TotalOutstandingItems:        r.TotalOutstandingItems,
		ComputedBankStatementBalance: r.ComputedBankStatementBalance,
	}
}

// AggregateResponse is a debit/credit rollup in API responses.
type AggregateResponse struct {
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	Count       int             `json:"count"`
}

// AggregateFromDomain converts a domain aggregate to a response.
func AggregateFromDomain(a domain.Aggregate) AggregateResponse {
	return AggregateResponse{
		DebitTotal:  a.DebitTotal,
		CreditTotal: a.CreditTotal,
		Count:       a.Count,
	}
}

// SourceCodeRowResponse is one source-code row of the source report.
// Row subtotals are presented as magnitudes.
type SourceCodeRowResponse struct {
	SourceCode string            `json:"source_code"`
	Subtotal   AggregateResponse `json:"subtotal"`
}

// SourceCodeReportResponse represents the source-code report in API
// responses.
type SourceCodeReportResponse struct {
	Rows  []SourceCodeRowResponse `json:"rows"`
	Total AggregateResponse       `json:"total"`
}

// SourceCodeReportFromDomain converts a domain source-code report to a
// response, flipping row subtotals to absolute magnitudes.
func SourceCodeReportFromDomain(r *domain.SourceCodeReport) *SourceCodeReportResponse {
	rows := make([]SourceCodeRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = SourceCodeRowResponse{
			SourceCode: row.SourceCode,
			Subtotal:   AggregateFromDomain(row.Subtotal.AbsoluteTotals()),
		}
	}

	return &SourceCodeReportResponse{
		Rows:  rows,
		Total: AggregateFromDomain(r.Total),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FieldErrorResponse is one failing field of a validation response.
type FieldErrorResponse struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// ValidationErrorResponse lists every failing field of a request.
type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields"`
}

// ValidationErrorsFromDomain converts accumulated validation failures to
// a response.
func ValidationErrorsFromDomain(errs domain.ValidationErrors) *ValidationErrorResponse {
	fields := make([]FieldErrorResponse, len(errs))
	for i, e := range errs {
		fields[i] = FieldErrorResponse{
			Field: e.Field,
			Kind:  string(e.Kind),
			Value: e.Value,
		}
	}

	return &ValidationErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	}
}
