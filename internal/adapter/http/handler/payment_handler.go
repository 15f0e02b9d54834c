package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apbooks/glcore/internal/adapter/http/dto"
	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.Payment, error)
	AllocateDetail(ctx context.Context, input usecase.AllocateDetailInput) (*domain.PaymentDetail, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListPaymentsByVendor(ctx context.Context, input usecase.ListPaymentsByVendorInput) ([]*domain.Payment, error)
}

// PaymentHandler handles payment HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Create creates a new payment.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	payment, err := h.paymentUC.CreatePayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create payment", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// AllocateDetail allocates part of a payment to an invoice.
func (h *PaymentHandler) AllocateDetail(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", nil)
		return
	}

	var req dto.AllocateDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	detail, err := h.paymentUC.AllocateDetail(r.Context(), req.ToUseCaseInput(paymentID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to allocate detail", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentDetailFromDomain(detail))
}

// Get retrieves a payment with its details.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing payment ID", nil)
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payment", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// ListByVendor lists a vendor's payments.
func (h *PaymentHandler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")
	if vendorID == "" {
		writeError(w, http.StatusBadRequest, "vendor_id is required", nil)
		return
	}

	payments, err := h.paymentUC.ListPaymentsByVendor(r.Context(), usecase.ListPaymentsByVendorInput{
		VendorID: vendorID,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payments", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}
