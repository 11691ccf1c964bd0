package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return NewClient(Options{
		BaseURL:   baseURL,
		Interval:  "1m",
		Range:     "5d",
		Timeout:   5 * time.Second,
		SymbolMap: map[string]string{"F.US.EP": "ES=F"},
	})
}

func TestFetchQuotes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ES=F" {
			t.Errorf("Expected mapped ticker in path, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("interval") != "1m" || r.URL.Query().Get("range") != "5d" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[{
			"timestamp": [1756198800, 1756198860, 1756198920, 1756198980],
			"indicators": {"quote": [{"close": [4000.5, null, 0, 4001.25]}]}
		}]}}`))
	}))
	defer ts.Close()

	quotes, err := testClient(ts.URL).FetchQuotes(context.Background(), "F.US.EP")
	if err != nil {
		t.Fatalf("Expected quotes, got %v", err)
	}

	// null and zero closes are dropped.
	if len(quotes) != 2 {
		t.Fatalf("Expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].Price != 4000.5 {
		t.Errorf("Expected first price 4000.5, got %f", quotes[0].Price)
	}
	if !quotes[0].Date.Equal(time.Unix(1756198800, 0)) {
		t.Errorf("Expected epoch-second conversion, got %v", quotes[0].Date)
	}
	if quotes[1].Price != 4001.25 {
		t.Errorf("Expected second price 4001.25, got %f", quotes[1].Price)
	}
}

func TestFetchQuotesUnknownSymbol(t *testing.T) {
	if _, err := testClient("http://unused").FetchQuotes(context.Background(), "F.US.XXX"); err == nil {
		t.Error("Expected an error for an unmapped symbol")
	}
}

func TestFetchQuotesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	if _, err := testClient(ts.URL).FetchQuotes(context.Background(), "F.US.EP"); err == nil {
		t.Error("Expected an error for a non-2xx response")
	}
}

func TestFetchQuotesEmptyResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[]}}`))
	}))
	defer ts.Close()

	if _, err := testClient(ts.URL).FetchQuotes(context.Background(), "F.US.EP"); err == nil {
		t.Error("Expected an error for a payload with no result")
	}
}

func TestSymbols(t *testing.T) {
	c := testClient("http://unused")
	symbols := c.Symbols()
	if len(symbols) != 1 || symbols[0] != "F.US.EP" {
		t.Errorf("Expected [F.US.EP], got %v", symbols)
	}
}
