package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"trader-board/internal/types"
)

// Board is the trader roster, account share mapping, and reporting window
// for one report run.
type Board struct {
	Name          string             `json:"name"`
	AllowPractice bool               `json:"allow_practice"`
	AllowCombine  bool               `json:"allow_combine"`
	AllowXFA      bool               `json:"allow_xfa"`
	AllowMultiple bool               `json:"allow_multiple"`
	StartDate     time.Time          `json:"start_date"`
	EndDate       time.Time          `json:"end_date"`
	Shares        map[string][]int64 `json:"shares"`
}

// boardFile mirrors the on-disk JSON shape; dates arrive as ISO-8601 strings.
type boardFile struct {
	Name          string             `json:"name"`
	AllowPractice bool               `json:"allow_practice"`
	AllowCombine  bool               `json:"allow_combine"`
	AllowXFA      bool               `json:"allow_xfa"`
	AllowMultiple bool               `json:"allow_multiple"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Shares        map[string][]int64 `json:"shares"`
}

// Window returns the board's reporting window.
func (b *Board) Window() types.Window {
	return types.Window{Start: b.StartDate, End: b.EndDate}
}

// Traders returns the trader identifiers in deterministic order.
func (b *Board) Traders() []string {
	traders := make([]string, 0, len(b.Shares))
	for trader := range b.Shares {
		traders = append(traders, trader)
	}
	sort.Strings(traders)
	return traders
}

// Validate fails fast on a board no report can be derived from.
func (b *Board) Validate() error {
	if b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("start_date %s is after end_date %s",
			b.StartDate.Format(time.RFC3339), b.EndDate.Format(time.RFC3339))
	}
	if len(b.Shares) == 0 {
		return errors.New("shares cannot be empty")
	}
	return nil
}

// Load reads a board by name from dir, e.g. Load("boards", "default") reads
// boards/default.json.
func Load(dir, name string) (*Board, error) {
	path := filepath.Join(dir, name+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bf boardFile
	if err := json.Unmarshal(b, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse board %s: %w", path, err)
	}

	start, err := parseDate(bf.StartDate)
	if err != nil {
		return nil, fmt.Errorf("board %s: invalid start_date: %w", path, err)
	}
	end, err := parseDate(bf.EndDate)
	if err != nil {
		return nil, fmt.Errorf("board %s: invalid end_date: %w", path, err)
	}

	board := &Board{
		Name:          bf.Name,
		AllowPractice: bf.AllowPractice,
		AllowCombine:  bf.AllowCombine,
		AllowXFA:      bf.AllowXFA,
		AllowMultiple: bf.AllowMultiple,
		StartDate:     start,
		EndDate:       end,
		Shares:        bf.Shares,
	}

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}

	return board, nil
}

// parseDate accepts full RFC3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp '%s'", s)
}
