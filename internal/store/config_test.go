package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
broker:
  base_url: https://broker.example.com
quotes:
  base_url: https://quotes.example.com/chart
`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected config to load, got %v", err)
	}

	if c.BoardsDir != "boards" {
		t.Errorf("Expected default boards_dir, got %s", c.BoardsDir)
	}
	if c.Quotes.Interval != "1m" || c.Quotes.Range != "5d" {
		t.Errorf("Expected default quote interval/range, got %s/%s", c.Quotes.Interval, c.Quotes.Range)
	}
	if c.DefaultSymbol != "F.US.EP" {
		t.Errorf("Expected default symbol F.US.EP, got %s", c.DefaultSymbol)
	}
	if c.SymbolMap["F.US.ENQ"] != "NQ=F" {
		t.Errorf("Expected default symbol map entry, got %s", c.SymbolMap["F.US.ENQ"])
	}
	if c.Fetchers != 4 {
		t.Errorf("Expected default fetchers 4, got %d", c.Fetchers)
	}
}

func TestLoadConfigMissingBrokerURL(t *testing.T) {
	path := writeConfig(t, `
quotes:
  base_url: https://quotes.example.com/chart
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation to reject a missing broker base_url")
	}
}

func TestLoadConfigUnknownDefaultSymbol(t *testing.T) {
	path := writeConfig(t, `
broker:
  base_url: https://broker.example.com
quotes:
  base_url: https://quotes.example.com/chart
default_symbol: F.US.XXX
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected validation to reject a default symbol missing from the map")
	}
}
