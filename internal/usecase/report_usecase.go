package usecase

import (
	"context"
	"time"

	"github.com/apbooks/glcore/internal/domain"
)

// ReportUseCase aggregates posting collections into report rollups.
type ReportUseCase struct {
	postingRepo PostingRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(postingRepo PostingRepository) *ReportUseCase {
	return &ReportUseCase{postingRepo: postingRepo}
}

// ReportRangeInput bounds a report by posting date.
type ReportRangeInput struct {
	From time.Time
	To   time.Time
}

// SourceCodeReport groups the range's postings by source code, subtotals
// each group, and rolls the subtotals into the report total. Presentation
// of |debit| and |credit| magnitudes is left to the row's
// Subtotal.AbsoluteTotals.
func (uc *ReportUseCase) SourceCodeReport(ctx context.Context, input ReportRangeInput) (*domain.SourceCodeReport, error) {
	postings, err := uc.postingRepo.ListByDateRange(ctx, input.From, input.To)
	if err != nil {
		return nil, err
	}

	report := domain.BuildSourceCodeReport(postings)

	return &report, nil
}

// DebitCreditSummary partitions the range's postings into debit and
// credit totals.
func (uc *ReportUseCase) DebitCreditSummary(ctx context.Context, input ReportRangeInput) (domain.Aggregate, error) {
	postings, err := uc.postingRepo.ListByDateRange(ctx, input.From, input.To)
	if err != nil {
		return domain.Aggregate{}, err
	}

	return domain.PartitionByDebitCredit(postings), nil
}
