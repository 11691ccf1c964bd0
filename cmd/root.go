package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"trader-board/internal/aggregate"
	"trader-board/internal/board"
	"trader-board/internal/broker"
	"trader-board/internal/logger"
	"trader-board/internal/quotes"
	"trader-board/internal/runlog"
	"trader-board/internal/store"
)

var (
	cfgPath   string
	boardName string
)

var rootCMD = &cobra.Command{
	Use:   "trader-board",
	Short: "Trader board performance reports",
	Long: `trader-board fetches raw brokerage execution records for a board of
traders, reconstructs logical trades from partial fills, and reports
per-trader performance statistics and chart-ready win/loss series.`,
}

func Execute() {
	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to the config file")
	rootCMD.PersistentFlags().StringVar(&boardName, "board", "", "board name under boards_dir (default from config)")
	rootCMD.AddCommand(reportCMD)
	rootCMD.AddCommand(serveCMD)
}

// setup loads the environment, logger, config, and board shared by every
// subcommand. A board no report can be derived from fails fast here.
func setup() (*store.Config, *board.Board, error) {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return nil, nil, fmt.Errorf("logger init failed: %w", err)
	}

	if v := os.Getenv("BOARD_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		_ = runlog.CompressOlder(n)
	}

	cfg, err := store.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	name := boardName
	if name == "" {
		name = cfg.DefaultBoard
	}
	b, err := board.Load(cfg.BoardsDir, name)
	if err != nil {
		return nil, nil, err
	}

	return cfg, b, nil
}

func mustSetup() (*store.Config, *board.Board) {
	cfg, b, err := setup()
	if err != nil {
		log.Fatal(err)
	}
	return cfg, b
}

func collect(ctx context.Context, cfg *store.Config, b *board.Board) *aggregate.Result {
	source := broker.NewClient(cfg.Broker.BaseURL, time.Duration(cfg.Broker.TimeoutSeconds)*time.Second)
	collector := aggregate.NewCollector(source, cfg.Fetchers)

	op := logger.StartOperation(ctx, "board.collect", "board", b.Name)
	res := collector.Collect(op.GetContext(), b)
	op.End("traders", len(res.Trades), "fetch_failures", len(res.Errors))

	return res
}

func quoteClient(cfg *store.Config) *quotes.Client {
	return quotes.NewClient(quotes.Options{
		BaseURL:   cfg.Quotes.BaseURL,
		ProxyURL:  cfg.Quotes.ProxyURL,
		Interval:  cfg.Quotes.Interval,
		Range:     cfg.Quotes.Range,
		Timeout:   time.Duration(cfg.Quotes.TimeoutSeconds) * time.Second,
		SymbolMap: cfg.SymbolMap,
	})
}
