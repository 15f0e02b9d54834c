package domain

import (
	"github.com/shopspring/decimal"
)

// ReconciliationTypeVoid is the code of the void category; its group sum
// is added back after subtracting total outstanding items.
const ReconciliationTypeVoid = "V"

// ReconcilingItem is one bank-statement-side entry (outstanding check,
// deposit in transit, void, ...) used to reconcile a bank's GL balance.
type ReconcilingItem struct {
	ID     string
	Type   string
	Amount decimal.Decimal
}

// ReconciliationGroup is one report row: the items of a single
// reconciliation type and their signed sum.
type ReconciliationGroup struct {
	Type      string
	Items     []ReconcilingItem
	SumAmount decimal.Decimal
}

// ReconciliationReport is the derived result of reconciling a GL balance
// against a set of reconciling items. It is never persisted.
type ReconciliationReport struct {
	Groups                       []ReconciliationGroup
	GLBalance                    decimal.Decimal
	TotalOutstandingItems        decimal.Decimal
	ComputedBankStatementBalance decimal.Decimal
}

// Reconcile groups items by type in first-seen order, sums each group
// (signed), totals |amount| over all items, and computes
//
//	glBalance - totalOutstanding + voidGroupSum
//
// as the bank statement balance. Pure: no I/O, inputs not mutated,
// deterministic given the same input order. Empty input yields zero
// totals and a statement balance equal to glBalance.
//
// The void group's items are included in the absolute-value total and
// then added back as a signed sum, matching the books this report
// replaces; whether voids should instead be excluded outright is an
// open accounting question.
func Reconcile(items []ReconcilingItem, glBalance decimal.Decimal) ReconciliationReport {
	groupIdx := make(map[string]int)
	groups := make([]ReconciliationGroup, 0)
	totalOutstanding := decimal.Zero

	for _, item := range items {
		i, ok := groupIdx[item.Type]
		if !ok {
			i = len(groups)
			groupIdx[item.Type] = i
			groups = append(groups, ReconciliationGroup{Type: item.Type})
		}

		groups[i].Items = append(groups[i].Items, item)
		groups[i].SumAmount = groups[i].SumAmount.Add(item.Amount)
		totalOutstanding = totalOutstanding.Add(item.Amount.Abs())
	}

	voidAdjustment := decimal.Zero
	if i, ok := groupIdx[ReconciliationTypeVoid]; ok {
		voidAdjustment = groups[i].SumAmount
	}

	return ReconciliationReport{
		Groups:                       groups,
		GLBalance:                    glBalance,
		TotalOutstandingItems:        totalOutstanding,
		ComputedBankStatementBalance: glBalance.Sub(totalOutstanding).Add(voidAdjustment),
	}
}
