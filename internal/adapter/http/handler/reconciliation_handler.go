package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/adapter/http/dto"
	"github.com/apbooks/glcore/internal/domain"
)

// ReconciliationService defines the behavior needed by
// ReconciliationHandler.
type ReconciliationService interface {
	ReconcileBank(ctx context.Context, bankID string) (*domain.ReconciliationReport, error)
	Reconcile(items []domain.ReconcilingItem, glBalance decimal.Decimal) *domain.ReconciliationReport
}

// ReconciliationHandler handles bank reconciliation HTTP requests.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// ReconcileBank computes a bank's reconciliation report from its stored
// GL balance and reconciling items.
func (h *ReconciliationHandler) ReconcileBank(w http.ResponseWriter, r *http.Request) {
	bankID := chi.URLParam(r, "id")
	if bankID == "" {
		writeError(w, http.StatusBadRequest, "missing bank ID", nil)
		return
	}

	report, err := h.reconciliationUC.ReconcileBank(r.Context(), bankID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile bank", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromDomain(report))
}

// Reconcile computes a reconciliation report over caller-supplied items.
func (h *ReconciliationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	report := h.reconciliationUC.Reconcile(req.ToDomain(), req.GLBalance)

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromDomain(report))
}
