package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trader-board/internal/export"
	"trader-board/internal/format"
	"trader-board/internal/logger"
	"trader-board/internal/stats"
	"trader-board/internal/types"
)

var reportCMD = &cobra.Command{
	Use:   "report",
	Short: "Fetch fills, aggregate trades, and print per-trader stats",
	Long: `Fetch the board's fill streams, merge partial fills into trades, and
print the per-trader statistics table. Stats and trades are also written
as CSV files to the configured export directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, b := mustSetup()
		defer logger.Shutdown(ctx)

		res := collect(ctx, cfg, b)
		allStats := stats.ComputeAll(res.Trades)

		printStats(b.Traders(), allStats)
		printTrades(b.Traders(), res.Trades)

		if p, err := export.WriteStatsCSV(cfg.Export.Dir, allStats); err == nil {
			log.Println("stats CSV written:", p)
		} else {
			log.Println("stats CSV failed:", err)
		}
		if p, err := export.WriteTradesCSV(cfg.Export.Dir, res.Trades); err == nil {
			log.Println("trades CSV written:", p)
		} else {
			log.Println("trades CSV failed:", err)
		}

		for _, fe := range res.Errors {
			log.Printf("account %d (%s): fetch failed: %v", fe.AccountID, fe.Trader, fe.Err)
		}
	},
}

func printStats(traders []string, allStats map[string]types.TraderStats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "trader\t#\twin rate\tavg profit\tavg loss\tr\texpectancy\tavg pnl\ttotal pnl")
	for _, trader := range traders {
		s := allStats[trader]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			trader,
			format.Number(s.NumberOfTrades),
			format.Percent(s.WinRate),
			format.Currency(s.AverageProfit),
			format.Currency(s.AverageLoss),
			format.Float(s.RewardRisk),
			format.Float(s.Expectancy),
			format.Currency(s.AveragePnL),
			format.Currency(s.PnL),
		)
	}
	w.Flush()
	fmt.Println()
}

func printTrades(traders []string, trades map[string][]types.Trade) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "trader\tsymbol\tstart\tend\tentry\texit\tpnl")
	for _, trader := range traders {
		for _, t := range trades[trader] {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				trader,
				t.Symbol,
				format.Date(t.StartDate),
				format.Date(t.EndDate),
				format.Float(t.EntryPrice),
				format.Float(t.ExitPrice),
				format.Currency(t.PnL),
			)
		}
	}
	w.Flush()
}
