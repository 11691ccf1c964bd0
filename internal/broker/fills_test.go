package broker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trader-board/internal/types"
)

func testWindow() types.Window {
	return types.Window{
		Start: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 29, 23, 59, 59, 0, time.UTC),
	}
}

func TestFetchFills(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/Trade/range" {
			t.Errorf("Expected /Trade/range, got %s", r.URL.Path)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if req["tradingAccountId"] != float64(1001) {
			t.Errorf("Expected tradingAccountId 1001, got %v", req["tradingAccountId"])
		}
		if req["start"] != "2025-08-25T00:00:00Z" {
			t.Errorf("Unexpected start %v", req["start"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"symbolId": "F.US.EP",
			"createdAt": "2025-08-26T09:30:00Z",
			"exitedAt": "2025-08-26T10:15:00Z",
			"entryPrice": 4050.25,
			"exitPrice": 4061.5,
			"pnL": 225.0,
			"fees": 4.5,
			"positionSize": 2
		}]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	fills, err := client.FetchFills(context.Background(), 1001, testWindow())
	if err != nil {
		t.Fatalf("Expected fills, got %v", err)
	}

	if len(fills) != 1 {
		t.Fatalf("Expected 1 fill, got %d", len(fills))
	}
	f := fills[0]
	if f.SymbolID != "F.US.EP" {
		t.Errorf("Unexpected symbol %s", f.SymbolID)
	}
	if !f.CreatedAt.Equal(time.Date(2025, 8, 26, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("Unexpected createdAt %v", f.CreatedAt)
	}
	if f.PnL != 225.0 || f.Fees != 4.5 || f.PositionSize != 2 {
		t.Errorf("Unexpected fill values %+v", f)
	}
}

func TestFetchFillsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	if _, err := client.FetchFills(context.Background(), 1001, testWindow()); err == nil {
		t.Error("Expected an error for a non-2xx response")
	}
}

func TestFetchFillsParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 5*time.Second)
	if _, err := client.FetchFills(context.Background(), 1001, testWindow()); err == nil {
		t.Error("Expected an error for a malformed response")
	}
}
