package handler

import (
	"context"
	"net/http"

	"github.com/apbooks/glcore/internal/adapter/http/dto"
	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	SourceCodeReport(ctx context.Context, input usecase.ReportRangeInput) (*domain.SourceCodeReport, error)
	DebitCreditSummary(ctx context.Context, input usecase.ReportRangeInput) (domain.Aggregate, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// SourceCodes builds the per-source-code report for a posting date range.
func (h *ReportHandler) SourceCodes(w http.ResponseWriter, r *http.Request) {
	input, err := reportRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err)
		return
	}

	report, err := h.reportUC.SourceCodeReport(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SourceCodeReportFromDomain(report))
}

// DebitCreditSummary returns the debit/credit totals for a posting date
// range.
func (h *ReportHandler) DebitCreditSummary(w http.ResponseWriter, r *http.Request) {
	input, err := reportRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err)
		return
	}

	agg, err := h.reportUC.DebitCreditSummary(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build summary", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AggregateFromDomain(agg))
}

func reportRange(r *http.Request) (usecase.ReportRangeInput, error) {
	from, err := parseDateQuery(r, "from")
	if err != nil {
		return usecase.ReportRangeInput{}, err
	}

	to, err := parseDateQuery(r, "to")
	if err != nil {
		return usecase.ReportRangeInput{}, err
	}

	return usecase.ReportRangeInput{From: from, To: to}, nil
}
