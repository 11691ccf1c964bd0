package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"trader-board/internal/types"
)

func sortedTraders[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteStatsCSV writes one row per trader plus a totals row and returns the
// file path.
func WriteStatsCSV(dir string, stats map[string]types.TraderStats) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, "stats.csv")
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	headers := []string{"trader", "trades", "won", "lost", "win_rate", "average_profit", "average_loss", "reward_risk", "expectancy", "average_pnl", "total_pnl"}
	if err := w.Write(headers); err != nil {
		return "", err
	}

	var totalTrades int
	var totalPnL float64
	for _, trader := range sortedTraders(stats) {
		s := stats[trader]
		rec := []string{
			trader,
			strconv.Itoa(s.NumberOfTrades),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Lost),
			fmt.Sprintf("%.4f", s.WinRate),
			fmt.Sprintf("%.2f", s.AverageProfit),
			fmt.Sprintf("%.2f", s.AverageLoss),
			fmt.Sprintf("%.4f", s.RewardRisk),
			fmt.Sprintf("%.4f", s.Expectancy),
			fmt.Sprintf("%.2f", s.AveragePnL),
			fmt.Sprintf("%.2f", s.PnL),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
		totalTrades += s.NumberOfTrades
		totalPnL += s.PnL
	}
	_ = w.Write([]string{"TOTAL", strconv.Itoa(totalTrades), "", "", "", "", "", "", "", "", fmt.Sprintf("%.2f", totalPnL)})

	return outPath, nil
}

// WriteTradesCSV writes every trader's aggregated trades, one row per trade,
// and returns the file path.
func WriteTradesCSV(dir string, trades map[string][]types.Trade) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, "trades.csv")
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	headers := []string{"trader", "symbol", "start", "end", "entry", "exit", "pnl"}
	if err := w.Write(headers); err != nil {
		return "", err
	}

	for _, trader := range sortedTraders(trades) {
		for _, t := range trades[trader] {
			rec := []string{
				trader,
				t.Symbol,
				t.StartDate.UTC().Format(time.RFC3339),
				t.EndDate.UTC().Format(time.RFC3339),
				fmt.Sprintf("%.4f", t.EntryPrice),
				fmt.Sprintf("%.4f", t.ExitPrice),
				fmt.Sprintf("%.2f", t.PnL),
			}
			if err := w.Write(rec); err != nil {
				return "", err
			}
		}
	}

	return outPath, nil
}
