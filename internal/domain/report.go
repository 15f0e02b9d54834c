package domain

import (
	"github.com/shopspring/decimal"
)

// Aggregate is a debit/credit rollup over a set of postings. DebitTotal
// and CreditTotal keep their signs; CreditTotal is zero or negative.
type Aggregate struct {
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Count       int
}

// Net returns DebitTotal + CreditTotal, the signed sum of every posting
// counted by the aggregate.
func (a Aggregate) Net() decimal.Decimal {
	return a.DebitTotal.Add(a.CreditTotal)
}

// AbsoluteTotals returns the aggregate with both totals as magnitudes,
// for reports that present |debit| and |credit| columns.
func (a Aggregate) AbsoluteTotals() Aggregate {
	return Aggregate{
		DebitTotal:  a.DebitTotal.Abs(),
		CreditTotal: a.CreditTotal.Abs(),
		Count:       a.Count,
	}
}

// PartitionByDebitCredit splits postings into debit and credit totals by
// the sign convention: amount >= 0 contributes to DebitTotal, amount < 0
// to CreditTotal. Signs are preserved, every posting is counted exactly
// once. Total function: empty input yields zero totals.
func PartitionByDebitCredit(postings []*LedgerPosting) Aggregate {
	agg := Aggregate{}
	for _, p := range postings {
		if p.IsDebit() {
			agg.DebitTotal = agg.DebitTotal.Add(p.Amount)
		} else {
			agg.CreditTotal = agg.CreditTotal.Add(p.Amount)
		}

		agg.Count++
	}

	return agg
}

// Rollup sums child subtotals into a parent aggregate. It reads only the
// children's totals, never the underlying postings, so the parent always
// equals the sum of its emitted children.
func Rollup(groups []Aggregate) Aggregate {
	total := Aggregate{}
	for _, g := range groups {
		total.DebitTotal = total.DebitTotal.Add(g.DebitTotal)
		total.CreditTotal = total.CreditTotal.Add(g.CreditTotal)
		total.Count += g.Count
	}

	return total
}

// SourceCodeAggregate is one row of the source report: the postings of a
// single source code with their subtotal.
type SourceCodeAggregate struct {
	SourceCode string
	Subtotal   Aggregate
}

// SourceCodeReport is the per-source-code breakdown of a posting set.
// The report total is rolled up from the subtotals, and the source
// report presents absolute magnitudes per row.
type SourceCodeReport struct {
	Rows  []SourceCodeAggregate
	Total Aggregate
}

// BuildSourceCodeReport groups postings by source code in first-seen
// order, subtotals each group, and rolls the subtotals into the report
// total. Postings without a source code group under the empty string.
func BuildSourceCodeReport(postings []*LedgerPosting) SourceCodeReport {
	rowIdx := make(map[string]int)
	buckets := make(map[string][]*LedgerPosting)
	order := make([]string, 0)

	for _, p := range postings {
		code := ""
		if p.SourceCodeID != nil {
			code = *p.SourceCodeID
		}

		if _, ok := rowIdx[code]; !ok {
			rowIdx[code] = len(order)
			order = append(order, code)
		}

		buckets[code] = append(buckets[code], p)
	}

	rows := make([]SourceCodeAggregate, 0, len(order))
	subtotals := make([]Aggregate, 0, len(order))

	for _, code := range order {
		sub := PartitionByDebitCredit(buckets[code])
		rows = append(rows, SourceCodeAggregate{SourceCode: code, Subtotal: sub})
		subtotals = append(subtotals, sub)
	}

	return SourceCodeReport{
		Rows:  rows,
		Total: Rollup(subtotals),
	}
}
