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

// PostingService defines the behavior needed by PostingHandler.
type PostingService interface {
	Record(ctx context.Context, input usecase.RecordPostingInput) (*domain.LedgerPosting, error)
	Update(ctx context.Context, id string, input usecase.RecordPostingInput) (*domain.LedgerPosting, error)
	GetPosting(ctx context.Context, id string) (*domain.LedgerPosting, error)
}

// PostingHandler handles ledger posting HTTP requests.
type PostingHandler struct {
	recorderUC PostingService
}

// NewPostingHandler creates a new PostingHandler.
func NewPostingHandler(recorderUC PostingService) *PostingHandler {
	return &PostingHandler{recorderUC: recorderUC}
}

// Record records a new ledger posting.
func (h *PostingHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	posting, err := h.recorderUC.Record(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record posting", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PostingFromDomain(posting))
}

// Update replaces a posting's fields after re-validation.
func (h *PostingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing posting ID", nil)
		return
	}

	var req dto.RecordPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	posting, err := h.recorderUC.Update(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update posting", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostingFromDomain(posting))
}

// Get retrieves a posting by ID.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing posting ID", nil)
		return
	}

	posting, err := h.recorderUC.GetPosting(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get posting", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostingFromDomain(posting))
}
