package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apbooks/glcore/internal/adapter/http/dto"
	"github.com/apbooks/glcore/tests/testutil"
)

func TestReports(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	account := testDB.CreateTestAccount(ctx, "4000", "Revenue")
	profitCenter := testDB.CreateTestProfitCenter(ctx, "Sales")
	apCode := testDB.CreateTestSourceCode(ctx, "AP", "Accounts payable")
	arCode := testDB.CreateTestSourceCode(ctx, "AR", "Accounts receivable")

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	testDB.CreateTestPosting(ctx, account.ID, profitCenter.ID, &apCode.ID, march, decimal.NewFromInt(300))
	testDB.CreateTestPosting(ctx, account.ID, profitCenter.ID, &apCode.ID, march, decimal.NewFromInt(-120))
	testDB.CreateTestPosting(ctx, account.ID, profitCenter.ID, &arCode.ID, march, decimal.NewFromInt(50))

	// Outside the queried range.
	testDB.CreateTestPosting(ctx, account.ID, profitCenter.ID, &apCode.ID,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(999))

	t.Run("source code report", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/source-codes?from=2024-03-01&to=2024-03-31", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.SourceCodeReportResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(resp.Rows) != 2 {
			t.Fatalf("expected 2 source code rows, got %d", len(resp.Rows))
		}

		rows := map[string]dto.AggregateResponse{}
		for _, row := range resp.Rows {
			rows[row.SourceCode] = row.Subtotal
		}

		ap := rows[apCode.ID]
		if !ap.DebitTotal.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected AP debit 300, got %s", ap.DebitTotal)
		}
		// Row subtotals are magnitudes.
		if !ap.CreditTotal.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected AP credit magnitude 120, got %s", ap.CreditTotal)
		}

		// The report total keeps its signs.
		if !resp.Total.CreditTotal.Equal(decimal.NewFromInt(-120)) {
			t.Errorf("expected total credit -120, got %s", resp.Total.CreditTotal)
		}
		if !resp.Total.DebitTotal.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected total debit 350, got %s", resp.Total.DebitTotal)
		}
	})

	t.Run("debit credit summary", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/debit-credit?from=2024-03-01&to=2024-03-31", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.AggregateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if !resp.DebitTotal.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected debit total 350, got %s", resp.DebitTotal)
		}
		if !resp.CreditTotal.Equal(decimal.NewFromInt(-120)) {
			t.Errorf("expected credit total -120, got %s", resp.CreditTotal)
		}
		if resp.Count != 3 {
			t.Errorf("expected 3 postings, got %d", resp.Count)
		}
	})

	t.Run("missing range parameter is a 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/source-codes?from=2024-03-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}
