package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/infrastructure/metrics"
)

// PaymentUseCase validates and constructs accounts-payable payments and
// their invoice allocations.
type PaymentUseCase struct {
	txManager   TransactionManager
	bankRepo    BankRepository
	vendorRepo  VendorRepository
	invoiceRepo InvoiceRepository
	paymentRepo PaymentRepository
	enumRepo    EnumRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	bankRepo BankRepository,
	vendorRepo VendorRepository,
	invoiceRepo InvoiceRepository,
	paymentRepo PaymentRepository,
	enumRepo EnumRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		bankRepo:    bankRepo,
		vendorRepo:  vendorRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		enumRepo:    enumRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreatePaymentInput represents input for creating a payment.
type CreatePaymentInput struct {
	PaymentDate   time.Time
	BankID        string
	VendorID      string
	StatusCode    string
	TypeCode      string
	PaymentNumber string
	Amount        decimal.Decimal
}

// CreatePayment resolves the bank, vendor, status code and type code,
// collecting every failure into one domain.ValidationErrors, and
// persists the payment on success. The payment's amount is not checked
// against its (still empty) detail allocations.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	var errs domain.ValidationErrors

	if input.BankID == "" {
		errs = append(errs, domain.Missing("bankId"))
	} else if _, err := uc.bankRepo.GetByID(ctx, input.BankID); err != nil {
		if !errors.Is(err, domain.ErrBankNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("bankId", input.BankID))
	}

	if input.VendorID == "" {
		errs = append(errs, domain.Missing("vendorId"))
	} else if _, err := uc.vendorRepo.GetByID(ctx, input.VendorID); err != nil {
		if !errors.Is(err, domain.ErrVendorNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("vendorId", input.VendorID))
	}

	if input.StatusCode == "" {
		errs = append(errs, domain.Missing("statusCode"))
	} else if _, err := uc.enumRepo.GetByCode(ctx, domain.EnumPaymentStatus, input.StatusCode); err != nil {
		if !errors.Is(err, domain.ErrEnumValueNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("statusCode", input.StatusCode))
	}

	if input.TypeCode == "" {
		errs = append(errs, domain.Missing("typeCode"))
	} else if _, err := uc.enumRepo.GetByCode(ctx, domain.EnumPaymentType, input.TypeCode); err != nil {
		if !errors.Is(err, domain.ErrEnumValueNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("typeCode", input.TypeCode))
	}

	if input.PaymentDate.IsZero() {
		errs = append(errs, domain.Missing("paymentDate"))
	}

	if len(errs) > 0 {
		uc.countValidationFailures(errs)
		return nil, errs
	}

	payment := &domain.Payment{
		ID:            uc.idGen.Generate(),
		BankID:        input.BankID,
		VendorID:      input.VendorID,
		Status:        domain.PaymentStatus(input.StatusCode),
		Type:          domain.PaymentType(input.TypeCode),
		PaymentDate:   input.PaymentDate,
		PaymentNumber: input.PaymentNumber,
		Amount:        input.Amount,
		CreatedAt:     time.Now().UTC(),
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.createInTx(ctx, func(tx Transaction) error {
			return uc.paymentRepo.Create(ctx, tx, payment)
		})
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PaymentErrors.WithLabelValues("create").Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsCreated.Inc()
	}

	return payment, nil
}

// AllocateDetailInput represents input for allocating a payment detail.
type AllocateDetailInput struct {
	PaymentID      string
	InvoiceID      string
	VendorID       *string
	InvoiceAmount  decimal.Decimal
	DiscountAmount *decimal.Decimal
}

// AllocateDetail resolves the payment and invoice (required) and the
// vendor (optional, but present-and-unresolvable is still an error),
// collect-all like CreatePayment. No check that a payment's detail
// amounts sum to the payment amount; that is the caller's ledger to
// balance.
func (uc *PaymentUseCase) AllocateDetail(ctx context.Context, input AllocateDetailInput) (*domain.PaymentDetail, error) {
	var errs domain.ValidationErrors

	if input.PaymentID == "" {
		errs = append(errs, domain.Missing("paymentId"))
	} else if _, err := uc.paymentRepo.GetByID(ctx, input.PaymentID); err != nil {
		if !errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("paymentId", input.PaymentID))
	}

	if input.InvoiceID == "" {
		errs = append(errs, domain.Missing("invoiceId"))
	} else if _, err := uc.invoiceRepo.GetByID(ctx, input.InvoiceID); err != nil {
		if !errors.Is(err, domain.ErrInvoiceNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("invoiceId", input.InvoiceID))
	}

	// Absent vendor is fine; a vendor that does not resolve is not.
	if input.VendorID != nil {
		if _, err := uc.vendorRepo.GetByID(ctx, *input.VendorID); err != nil {
			if !errors.Is(err, domain.ErrVendorNotFound) {
				return nil, err
			}

			errs = append(errs, domain.NotFound("vendorId", *input.VendorID))
		}
	}

	if len(errs) > 0 {
		uc.countValidationFailures(errs)
		return nil, errs
	}

	detail := &domain.PaymentDetail{
		ID:             uc.idGen.Generate(),
		PaymentID:      input.PaymentID,
		InvoiceID:      input.InvoiceID,
		VendorID:       input.VendorID,
		InvoiceAmount:  input.InvoiceAmount,
		DiscountAmount: input.DiscountAmount,
		CreatedAt:      time.Now().UTC(),
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.createInTx(ctx, func(tx Transaction) error {
			return uc.paymentRepo.CreateDetail(ctx, tx, detail)
		})
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.PaymentErrors.WithLabelValues("allocate_detail").Inc()
		}

		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DetailsAllocated.Inc()
	}

	return detail, nil
}

// GetPayment retrieves a payment with its details, in insertion order.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentsByVendorInput represents input for listing payments.
type ListPaymentsByVendorInput struct {
	VendorID string
	Limit    int
	Offset   int
}

// ListPaymentsByVendor lists payments for a vendor.
func (uc *PaymentUseCase) ListPaymentsByVendor(ctx context.Context, input ListPaymentsByVendorInput) ([]*domain.Payment, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.paymentRepo.ListByVendor(ctx, input.VendorID, input.Limit, input.Offset)
}

func (uc *PaymentUseCase) countValidationFailures(errs domain.ValidationErrors) {
	if uc.metrics == nil {
		return
	}

	for _, e := range errs {
		uc.metrics.ValidationFailures.WithLabelValues(e.Field, string(e.Kind)).Inc()
	}
}

func (uc *PaymentUseCase) createInTx(ctx context.Context, fn func(tx Transaction) error) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
