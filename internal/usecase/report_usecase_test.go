package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/apbooks/glcore/internal/domain"
	"github.com/apbooks/glcore/internal/usecase"
	"github.com/apbooks/glcore/internal/usecase/mocks"
)

func strPtr(s string) *string { return &s }

func TestReportUseCase_SourceCodeReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	postingRepo := mocks.NewMockPostingRepo(ctrl)
	postingRepo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return([]*domain.LedgerPosting{
		{ID: "p1", SourceCodeID: strPtr("AP"), Amount: decimal.NewFromInt(100)},
		{ID: "p2", SourceCodeID: strPtr("GL"), Amount: decimal.NewFromInt(-25)},
		{ID: "p3", SourceCodeID: strPtr("AP"), Amount: decimal.NewFromInt(-75)},
	}, nil)

	uc := usecase.NewReportUseCase(postingRepo)

	report, err := uc.SourceCodeReport(context.Background(), usecase.ReportRangeInput{From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	if report.Rows[0].SourceCode != "AP" || report.Rows[1].SourceCode != "GL" {
		t.Errorf("rows out of first-seen order: %v", report.Rows)
	}
	if !report.Total.DebitTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total debit = %s, want 100", report.Total.DebitTotal)
	}
	if !report.Total.CreditTotal.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("total credit = %s, want -100", report.Total.CreditTotal)
	}
}

func TestReportUseCase_DebitCreditSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	postingRepo := mocks.NewMockPostingRepo(ctrl)
	postingRepo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return([]*domain.LedgerPosting{
		{ID: "p1", Amount: decimal.NewFromInt(40)},
		{ID: "p2", Amount: decimal.NewFromInt(-15)},
	}, nil)

	uc := usecase.NewReportUseCase(postingRepo)

	agg, err := uc.DebitCreditSummary(context.Background(), usecase.ReportRangeInput{From: from, To: to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !agg.DebitTotal.Equal(decimal.NewFromInt(40)) || !agg.CreditTotal.Equal(decimal.NewFromInt(-15)) {
		t.Errorf("partition = %+v", agg)
	}
	if agg.Count != 2 {
		t.Errorf("count = %d, want 2", agg.Count)
	}
}

func TestReportUseCase_RepositoryErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postingRepo := mocks.NewMockPostingRepo(ctrl)
	postingRepo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	uc := usecase.NewReportUseCase(postingRepo)

	if _, err := uc.SourceCodeReport(context.Background(), usecase.ReportRangeInput{}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
