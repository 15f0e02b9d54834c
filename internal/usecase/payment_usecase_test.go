package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
	"github.com/apbooks/glcore/internal/usecase/mocks"
)

type paymentFixture struct {
	uc          *usecase.PaymentUseCase
	paymentRepo *mocks.MockPaymentRepository
	vendorRepo  *mocks.MockVendorRepository
}

func newPaymentFixture() *paymentFixture {
	bankRepo := mocks.NewMockBankRepository()
	bankRepo.Seed(&domain.Bank{ID: "bank-1", Name: "First National", GLAccountID: "acc-1"}, decimal.Zero)

	vendorRepo := mocks.NewMockVendorRepository()
	vendorRepo.Seed(&domain.Vendor{ID: "ven-1", Name: "Acme Supply"})

	invoiceRepo := mocks.NewMockInvoiceRepository()
	invoiceRepo.Seed(&domain.Invoice{ID: "inv-1", VendorID: "ven-1", InvoiceNumber: "INV-100", Amount: decimal.NewFromInt(150)})

	enumRepo := mocks.NewMockEnumRepository()
	enumRepo.Seed(
		&domain.EnumValue{ID: "e1", Domain: domain.EnumPaymentStatus, Code: "P", Description: "Paid"},
		&domain.EnumValue{ID: "e2", Domain: domain.EnumPaymentStatus, Code: "V", Description: "Void"},
		&domain.EnumValue{ID: "e3", Domain: domain.EnumPaymentType, Code: "A", Description: "ACH"},
		&domain.EnumValue{ID: "e4", Domain: domain.EnumPaymentType, Code: "C", Description: "Check"},
	)

	paymentRepo := mocks.NewMockPaymentRepository()

	uc := usecase.NewPaymentUseCase(
		mocks.NewMockTransactionManager(),
		bankRepo,
		vendorRepo,
		invoiceRepo,
		paymentRepo,
		enumRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		nil,
	)

	return &paymentFixture{uc: uc, paymentRepo: paymentRepo, vendorRepo: vendorRepo}
}

func validPaymentInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		BankID:        "bank-1",
		VendorID:      "ven-1",
		StatusCode:    "P",
		TypeCode:      "A",
		PaymentDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		PaymentNumber: "100045",
		Amount:        decimal.NewFromInt(150),
	}
}

func TestPaymentUseCase_CreatePayment_Success(t *testing.T) {
	f := newPaymentFixture()

	payment, err := f.uc.CreatePayment(context.Background(), validPaymentInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payment.Status != domain.PaymentStatusPaid {
		t.Errorf("status = %q, want %q", payment.Status, domain.PaymentStatusPaid)
	}
	if payment.Type != domain.PaymentTypeACH {
		t.Errorf("type = %q, want %q", payment.Type, domain.PaymentTypeACH)
	}

	stored, err := f.paymentRepo.GetByID(context.Background(), payment.ID)
	if err != nil {
		t.Fatalf("payment not persisted: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("stored amount %s, want 150", stored.Amount)
	}
}

func TestPaymentUseCase_CreatePayment_CollectsAllErrors(t *testing.T) {
	f := newPaymentFixture()

	input := validPaymentInput()
	input.BankID = "bank-404"
	input.VendorID = "ven-404"

	_, err := f.uc.CreatePayment(context.Background(), input)

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	// Exactly two NotFound errors, not one: the user fixing the bank
	// must also see the vendor problem.
	if len(verrs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(verrs), verrs)
	}
	if verrs[0].Field != "bankId" || verrs[0].Kind != domain.KindNotFound {
		t.Errorf("first error = %+v, want bankId not_found", verrs[0])
	}
	if verrs[1].Field != "vendorId" || verrs[1].Kind != domain.KindNotFound {
		t.Errorf("second error = %+v, want vendorId not_found", verrs[1])
	}
}

func TestPaymentUseCase_CreatePayment_UnknownCodes(t *testing.T) {
	f := newPaymentFixture()

	input := validPaymentInput()
	input.StatusCode = "X"
	input.TypeCode = "Z"

	_, err := f.uc.CreatePayment(context.Background(), input)

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(verrs), verrs)
	}
	if verrs[0].Field != "statusCode" || verrs[1].Field != "typeCode" {
		t.Errorf("unexpected fields: %v", verrs)
	}
}

func TestPaymentUseCase_AllocateDetail(t *testing.T) {
	vendorID := "ven-1"
	badVendor := "ven-404"
	discount := decimal.NewFromInt(5)

	tests := []struct {
		name       string
		input      usecase.AllocateDetailInput
		wantFields []string
	}{
		{
			name: "successful allocation",
			input: usecase.AllocateDetailInput{
				InvoiceID:      "inv-1",
				InvoiceAmount:  decimal.NewFromInt(150),
				DiscountAmount: &discount,
			},
		},
		{
			name: "vendor absent is fine",
			input: usecase.AllocateDetailInput{
				InvoiceID:     "inv-1",
				VendorID:      nil,
				InvoiceAmount: decimal.NewFromInt(150),
			},
		},
		{
			name: "vendor present and valid",
			input: usecase.AllocateDetailInput{
				InvoiceID:     "inv-1",
				VendorID:      &vendorID,
				InvoiceAmount: decimal.NewFromInt(150),
			},
		},
		{
			name: "vendor present but unresolvable is an error",
			input: usecase.AllocateDetailInput{
				InvoiceID:     "inv-1",
				VendorID:      &badVendor,
				InvoiceAmount: decimal.NewFromInt(150),
			},
			wantFields: []string{"vendorId"},
		},
		{
			name: "unknown invoice and payment collected together",
			input: usecase.AllocateDetailInput{
				PaymentID:     "pay-404",
				InvoiceID:     "inv-404",
				InvoiceAmount: decimal.NewFromInt(150),
			},
			wantFields: []string{"paymentId", "invoiceId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture()

			payment, err := f.uc.CreatePayment(context.Background(), validPaymentInput())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			input := tt.input
			if input.PaymentID == "" {
				input.PaymentID = payment.ID
			}

			detail, err := f.uc.AllocateDetail(context.Background(), input)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if detail.PaymentID != input.PaymentID {
					t.Errorf("detail payment = %q, want %q", detail.PaymentID, input.PaymentID)
				}
				return
			}

			var verrs domain.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.wantFields), len(verrs), verrs)
			}
			for i, ve := range verrs {
				if ve.Field != tt.wantFields[i] {
					t.Errorf("error %d field = %q, want %q", i, ve.Field, tt.wantFields[i])
				}
			}
		})
	}
}

func TestPaymentUseCase_AllocateDetail_KeepsInsertionOrder(t *testing.T) {
	f := newPaymentFixture()

	payment, err := f.uc.CreatePayment(context.Background(), validPaymentInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := f.uc.AllocateDetail(context.Background(), usecase.AllocateDetailInput{
		PaymentID:     payment.ID,
		InvoiceID:     "inv-1",
		InvoiceAmount: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := f.uc.AllocateDetail(context.Background(), usecase.AllocateDetailInput{
		PaymentID:     payment.ID,
		InvoiceID:     "inv-1",
		InvoiceAmount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := f.uc.GetPayment(context.Background(), payment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stored.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(stored.Details))
	}
	if stored.Details[0].ID != first.ID || stored.Details[1].ID != second.ID {
		t.Errorf("details out of insertion order: %v", stored.Details)
	}
}
