package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apbooks/glcore/internal/domain"
)

func item(typ string, amount int64) domain.ReconcilingItem {
	return domain.ReconcilingItem{Type: typ, Amount: decimal.NewFromInt(amount)}
}

func TestReconcile_StatementBalanceFormula(t *testing.T) {
	items := []domain.ReconcilingItem{
		item("O", 100),
		item("O", 50),
		item("V", -20),
	}

	report := domain.Reconcile(items, decimal.NewFromInt(1000))

	assert.True(t, report.TotalOutstandingItems.Equal(decimal.NewFromInt(170)),
		"total outstanding = |100|+|50|+|-20|, got %s", report.TotalOutstandingItems)
	assert.True(t, report.ComputedBankStatementBalance.Equal(decimal.NewFromInt(810)),
		"1000 - 170 + (-20) = 810, got %s", report.ComputedBankStatementBalance)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, "O", report.Groups[0].Type)
	assert.True(t, report.Groups[0].SumAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "V", report.Groups[1].Type)
	assert.True(t, report.Groups[1].SumAmount.Equal(decimal.NewFromInt(-20)))
}

func TestReconcile_EmptyInput(t *testing.T) {
	report := domain.Reconcile(nil, decimal.NewFromInt(500))

	assert.Empty(t, report.Groups)
	assert.True(t, report.TotalOutstandingItems.IsZero())
	assert.True(t, report.ComputedBankStatementBalance.Equal(decimal.NewFromInt(500)))
}

func TestReconcile_GroupsKeepFirstSeenOrder(t *testing.T) {
	items := []domain.ReconcilingItem{
		item("B", 10),
		item("A", 20),
		item("B", 30),
	}

	report := domain.Reconcile(items, decimal.Zero)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, "B", report.Groups[0].Type)
	assert.Equal(t, "A", report.Groups[1].Type)
	require.Len(t, report.Groups[0].Items, 2)
	require.Len(t, report.Groups[1].Items, 1)
	assert.True(t, report.Groups[0].SumAmount.Equal(decimal.NewFromInt(40)))
}

func TestReconcile_NoVoidGroup(t *testing.T) {
	items := []domain.ReconcilingItem{
		item("O", 100),
	}

	report := domain.Reconcile(items, decimal.NewFromInt(1000))

	// No void adjustment: 1000 - 100 + 0
	assert.True(t, report.ComputedBankStatementBalance.Equal(decimal.NewFromInt(900)))
}

func TestReconcile_NegativeGLBalanceAccepted(t *testing.T) {
	report := domain.Reconcile([]domain.ReconcilingItem{item("O", 50)}, decimal.NewFromInt(-100))

	// Total function: out-of-range inputs still follow the formula.
	assert.True(t, report.ComputedBankStatementBalance.Equal(decimal.NewFromInt(-150)))
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	items := []domain.ReconcilingItem{
		item("V", -20),
		item("O", 100),
	}

	domain.Reconcile(items, decimal.NewFromInt(1000))

	assert.Equal(t, "V", items[0].Type)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(-20)))
	assert.Equal(t, "O", items[1].Type)
}
