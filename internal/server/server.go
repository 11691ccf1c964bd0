package server

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"trader-board/internal/aggregate"
	"trader-board/internal/board"
	"trader-board/internal/chart"
	"trader-board/internal/logger"
	"trader-board/internal/quotes"
	"trader-board/internal/stats"
	"trader-board/internal/types"
)

// Service serves one collected board run over HTTP. Trades and stats are
// computed once at startup; the chart payload is rebuilt per request since
// the quote series depends on the requested symbol.
type Service struct {
	board         *board.Board
	result        *aggregate.Result
	stats         map[string]types.TraderStats
	quotes        quotes.Source
	symbols       []string
	defaultSymbol string
}

// New creates a service over an already-collected result.
func New(b *board.Board, result *aggregate.Result, q quotes.Source, symbols []string, defaultSymbol string) *Service {
	sort.Strings(symbols)
	return &Service{
		board:         b,
		result:        result,
		stats:         stats.ComputeAll(result.Trades),
		quotes:        q,
		symbols:       symbols,
		defaultSymbol: defaultSymbol,
	}
}

// SetupRoutes builds the gin engine with all API routes registered.
func (s *Service) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/board", s.getBoard)
	r.GET("/api/stats", s.getStats)
	r.GET("/api/trades", s.getTrades)
	r.GET("/api/symbols", s.getSymbols)
	r.GET("/api/chart", s.getChart)

	return r
}

func (s *Service) getBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":           s.board.Name,
		"start_date":     s.board.StartDate,
		"end_date":       s.board.EndDate,
		"traders":        s.board.Traders(),
		"fetch_failures": s.result.Errors,
	})
}

type statsRow struct {
	Trader string `json:"trader"`
	types.TraderStats
}

func (s *Service) getStats(c *gin.Context) {
	rows := make([]statsRow, 0, len(s.stats))
	for _, trader := range s.board.Traders() {
		rows = append(rows, statsRow{Trader: trader, TraderStats: s.stats[trader]})
	}
	c.JSON(http.StatusOK, rows)
}

type tradeRow struct {
	Trader string `json:"trader"`
	types.Trade
}

func (s *Service) getTrades(c *gin.Context) {
	rows := []tradeRow{}
	for _, trader := range s.board.Traders() {
		for _, t := range s.result.Trades[trader] {
			rows = append(rows, tradeRow{Trader: trader, Trade: t})
		}
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Service) getSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": s.defaultSymbol,
		"symbols": s.symbols,
	})
}

func (s *Service) getChart(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", s.defaultSymbol)

	series, err := s.quotes.FetchQuotes(c.Request.Context(), symbol)
	if err != nil {
		// A failed quote fetch yields an empty domain, not an error
		// response: the chart simply contains no trades.
		logger.ErrorWithErr(c.Request.Context(), "Quote fetch failed, serving empty chart", err, "symbol", symbol)
		series = nil
	}

	c.JSON(http.StatusOK, chart.Build(series, s.result.Trades))
}
