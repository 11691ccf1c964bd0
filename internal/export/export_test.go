package export

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"trader-board/internal/types"
)

func TestWriteStatsCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteStatsCSV(dir, map[string]types.TraderStats{
		"bob":   {NumberOfTrades: 1, Won: 1, WinRate: 1, PnL: 12.5},
		"alice": {NumberOfTrades: 2, Won: 1, Lost: 1, WinRate: 0.5, PnL: 5},
	})
	if err != nil {
		t.Fatalf("Expected CSV to be written, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 2 traders + totals
	if len(records) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(records))
	}
	if records[1][0] != "alice" || records[2][0] != "bob" {
		t.Errorf("Expected traders in sorted order, got %s then %s", records[1][0], records[2][0])
	}
	if records[3][0] != "TOTAL" || records[3][10] != "17.50" {
		t.Errorf("Unexpected totals row %v", records[3])
	}
}

func TestWriteTradesCSV(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2025, 8, 26, 9, 30, 0, 0, time.UTC)
	path, err := WriteTradesCSV(dir, map[string][]types.Trade{
		"alice": {{Symbol: "F.US.EP", StartDate: start, EndDate: start.Add(time.Hour), EntryPrice: 4050.25, ExitPrice: 4061.5, PnL: 110.25}},
	})
	if err != nil {
		t.Fatalf("Expected CSV to be written, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected header plus 1 trade, got %d rows", len(records))
	}
	if records[1][2] != "2025-08-26T09:30:00Z" {
		t.Errorf("Unexpected start column %s", records[1][2])
	}
}
