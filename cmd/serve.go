package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"trader-board/internal/logger"
	"trader-board/internal/server"
)

var serveCMD = &cobra.Command{
	Use:   "serve",
	Short: "Collect the board once and serve it over HTTP",
	Long: `Fetch and aggregate the board's trades once at startup, then serve
stats rows, trade rows, and chart payloads as a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, b := mustSetup()
		defer logger.Shutdown(ctx)

		res := collect(ctx, cfg, b)

		q := quoteClient(cfg)
		svc := server.New(b, res, q, q.Symbols(), cfg.DefaultSymbol)
		r := svc.SetupRoutes()

		logger.Info(ctx, "Server starting", "addr", cfg.Server.Addr, "board", b.Name)
		if err := r.Run(cfg.Server.Addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}
