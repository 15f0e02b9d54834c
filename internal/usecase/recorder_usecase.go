package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/infrastructure/metrics"
)

// RecorderUseCase validates and records general-ledger postings.
type RecorderUseCase struct {
	accountRepo      AccountRepository
	profitCenterRepo ProfitCenterRepository
	sourceCodeRepo   SourceCodeRepository
	postingRepo      PostingRepository
	idGen            IDGenerator
	metrics          *metrics.Metrics
}

// NewRecorderUseCase creates a new RecorderUseCase.
func NewRecorderUseCase(
	accountRepo AccountRepository,
	profitCenterRepo ProfitCenterRepository,
	sourceCodeRepo SourceCodeRepository,
	postingRepo PostingRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *RecorderUseCase {
	return &RecorderUseCase{
		accountRepo:      accountRepo,
		profitCenterRepo: profitCenterRepo,
		sourceCodeRepo:   sourceCodeRepo,
		postingRepo:      postingRepo,
		idGen:            idGen,
		metrics:          metrics,
	}
}

// RecordPostingInput represents input for recording a posting.
type RecordPostingInput struct {
	Date               time.Time
	AccountID          string
	ProfitCenterID     string
	SourceCodeID       *string
	Message            *string
	JournalEntryNumber *string
	Amount             decimal.Decimal
}

// Record validates the input references and records a posting. Every
// unresolved reference is collected; on any failure the returned error
// is a domain.ValidationErrors listing all of them. The amount is stored
// exactly as given. A set of postings is not required to net to zero.
func (uc *RecorderUseCase) Record(ctx context.Context, input RecordPostingInput) (*domain.LedgerPosting, error) {
	errs, err := uc.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		uc.countValidationFailures(errs)
		return nil, errs
	}

	now := time.Now().UTC()
	posting := &domain.LedgerPosting{
		ID:                 uc.idGen.Generate(),
		AccountID:          input.AccountID,
		ProfitCenterID:     input.ProfitCenterID,
		SourceCodeID:       input.SourceCodeID,
		Date:               input.Date,
		Amount:             input.Amount,
		Message:            input.Message,
		JournalEntryNumber: input.JournalEntryNumber,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PostingsRecorded.Inc()
		amount, _ := posting.Amount.Abs().Float64()
		uc.metrics.PostingAmount.Observe(amount)
	}

	return posting, nil
}

// Update re-validates the input with the same rules as Record and
// replaces the posting's fields. Postings are otherwise immutable.
func (uc *RecorderUseCase) Update(ctx context.Context, id string, input RecordPostingInput) (*domain.LedgerPosting, error) {
	existing, err := uc.postingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs, err := uc.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		uc.countValidationFailures(errs)
		return nil, errs
	}

	posting := &domain.LedgerPosting{
		ID:                 existing.ID,
		AccountID:          input.AccountID,
		ProfitCenterID:     input.ProfitCenterID,
		SourceCodeID:       input.SourceCodeID,
		Date:               input.Date,
		Amount:             input.Amount,
		Message:            input.Message,
		JournalEntryNumber: input.JournalEntryNumber,
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          time.Now().UTC(),
	}

	if err := uc.postingRepo.Update(ctx, posting); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PostingsUpdated.Inc()
	}

	return posting, nil
}

// GetPosting retrieves a posting by ID.
func (uc *RecorderUseCase) GetPosting(ctx context.Context, id string) (*domain.LedgerPosting, error) {
	return uc.postingRepo.GetByID(ctx, id)
}

// validate attempts every lookup before reporting; failures accumulate
// rather than short-circuiting. Infrastructure errors propagate as the
// second return value and abort validation.
func (uc *RecorderUseCase) validate(ctx context.Context, input RecordPostingInput) (domain.ValidationErrors, error) {
	var errs domain.ValidationErrors

	if input.AccountID == "" {
		errs = append(errs, domain.Missing("accountId"))
	} else if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("accountId", input.AccountID))
	}

	if input.ProfitCenterID == "" {
		errs = append(errs, domain.Missing("profitCenterId"))
	} else if _, err := uc.profitCenterRepo.GetByID(ctx, input.ProfitCenterID); err != nil {
		if !errors.Is(err, domain.ErrProfitCenterNotFound) {
			return nil, err
		}

		errs = append(errs, domain.NotFound("profitCenterId", input.ProfitCenterID))
	}

	if input.SourceCodeID != nil {
		if _, err := uc.sourceCodeRepo.GetByID(ctx, *input.SourceCodeID); err != nil {
			if !errors.Is(err, domain.ErrSourceCodeNotFound) {
				return nil, err
			}

			errs = append(errs, domain.NotFound("sourceCodeId", *input.SourceCodeID))
		}
	}

	if input.Date.IsZero() {
		errs = append(errs, domain.Missing("date"))
	}

	return errs, nil
}

func (uc *RecorderUseCase) countValidationFailures(errs domain.ValidationErrors) {
	if uc.metrics == nil {
		return
	}

	for _, e := range errs {
		uc.metrics.ValidationFailures.WithLabelValues(e.Field, string(e.Kind)).Inc()
	}
}
