package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/domain"
)

// ReconciliationUseCase computes bank statement balances from the GL
// balance and the bank's reconciling items.
type ReconciliationUseCase struct {
	bankRepo BankRepository
	itemRepo ReconcilingItemRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(bankRepo BankRepository, itemRepo ReconcilingItemRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		bankRepo: bankRepo,
		itemRepo: itemRepo,
	}
}

// ReconcileBank loads the bank's GL balance and reconciling items and
// runs the reconciliation over them.
func (uc *ReconciliationUseCase) ReconcileBank(ctx context.Context, bankID string) (*domain.ReconciliationReport, error) {
	if _, err := uc.bankRepo.GetByID(ctx, bankID); err != nil {
		return nil, err
	}

	glBalance, err := uc.bankRepo.GetGLBalance(ctx, bankID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListByBank(ctx, bankID)
	if err != nil {
		return nil, err
	}

	report := domain.Reconcile(items, glBalance)

	return &report, nil
}

// Reconcile runs the reconciliation over caller-supplied items and GL
// balance, with no I/O. Total function: it never fails.
func (uc *ReconciliationUseCase) Reconcile(items []domain.ReconcilingItem, glBalance decimal.Decimal) *domain.ReconciliationReport {
	report := domain.Reconcile(items, glBalance)

	return &report
}
