package integration

import (
	"bytes"
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

func TestPostingRecording(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestRouter(t, testDB)

	account := testDB.CreateTestAccount(ctx, "1000", "Cash")
	profitCenter := testDB.CreateTestProfitCenter(ctx, "Operations")
	sourceCode := testDB.CreateTestSourceCode(ctx, "AP", "Accounts payable")

	t.Run("record debit posting", func(t *testing.T) {
		req := dto.RecordPostingRequest{
			AccountID:      account.ID,
			ProfitCenterID: profitCenter.ID,
			SourceCodeID:   &sourceCode.ID,
			Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Amount:         decimal.RequireFromString("125.50"),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/postings/", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.PostingResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.ID == "" {
			t.Error("expected generated posting ID")
		}
		if !resp.Amount.Equal(decimal.RequireFromString("125.50")) {
			t.Errorf("expected amount 125.50, got %s", resp.Amount)
		}
	})

	t.Run("unknown references are all reported", func(t *testing.T) {
		req := dto.RecordPostingRequest{
			AccountID:      "no-such-account",
			ProfitCenterID: "no-such-pc",
			Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(10),
		}
		body, _ := json.Marshal(req)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/postings/", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected status %d, got %d: %s", http.StatusUnprocessableEntity, w.Code, w.Body.String())
		}

		var resp dto.ValidationErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if len(resp.Fields) != 2 {
			t.Fatalf("expected both bad references reported, got %+v", resp.Fields)
		}
	})

	t.Run("get and update posting", func(t *testing.T) {
		posting := testDB.CreateTestPosting(ctx, account.ID, profitCenter.ID, nil,
			time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(-75))

		r := httptest.NewRequest(http.MethodGet, "/api/v1/postings/"+posting.ID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		update := dto.RecordPostingRequest{
			AccountID:      account.ID,
			ProfitCenterID: profitCenter.ID,
			Date:           time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
			Amount:         decimal.NewFromInt(-80),
		}
		body, _ := json.Marshal(update)

		r = httptest.NewRequest(http.MethodPut, "/api/v1/postings/"+posting.ID, bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
		}

		var resp dto.PostingResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if !resp.Amount.Equal(decimal.NewFromInt(-80)) {
			t.Errorf("expected updated amount -80, got %s", resp.Amount)
		}
	})

	t.Run("get non-existent posting returns 404", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/postings/"+testutil.GenerateID(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}
