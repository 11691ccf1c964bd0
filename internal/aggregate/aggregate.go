package aggregate

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"trader-board/internal/board"
	"trader-board/internal/broker"
	"trader-board/internal/logger"
	"trader-board/internal/runlog"
	"trader-board/internal/types"
)

// Fill is a raw execution record reduced to per-unit terms. It exists only
// between normalization and aggregation.
type Fill struct {
	Symbol     string
	StartDate  time.Time
	EndDate    time.Time
	EntryPrice float64
	ExitPrice  float64
	PerUnitPnL float64
}

// Normalize converts a raw fill into a per-unit fill, applying the reporting
// window filter. The second return is false when the fill is dropped: it
// starts before the window, ends after it, or reports a zero position size.
func Normalize(window types.Window, rf types.RawFill) (Fill, bool) {
	if rf.CreatedAt.Before(window.Start) {
		return Fill{}, false
	}
	if rf.ExitedAt.After(window.End) {
		return Fill{}, false
	}
	size := math.Abs(rf.PositionSize)
	if size == 0 {
		return Fill{}, false
	}

	return Fill{
		Symbol:     rf.SymbolID,
		StartDate:  rf.CreatedAt,
		EndDate:    rf.ExitedAt,
		EntryPrice: rf.EntryPrice,
		ExitPrice:  rf.ExitPrice,
		PerUnitPnL: (rf.PnL - rf.Fees) / size,
	}, true
}

// Aggregator folds one trader's fill streams into a minimal trade list,
// merging fragments of what is really one continuous position. Fills must be
// added in non-decreasing creation-time order within each account; accounts
// are added one after another.
type Aggregator struct {
	window     types.Window
	trades     []types.Trade
	mergeCount int
}

// NewAggregator creates an aggregator for one trader over the given window.
func NewAggregator(window types.Window) *Aggregator {
	return &Aggregator{window: window, trades: []types.Trade{}}
}

// AddFills normalizes and folds one account's fill stream.
func (a *Aggregator) AddFills(fills []types.RawFill) {
	for _, rf := range fills {
		f, ok := Normalize(a.window, rf)
		if !ok {
			continue
		}
		a.add(f)
	}
}

func (a *Aggregator) add(f Fill) {
	if n := len(a.trades); n > 0 && f.StartDate.Before(a.trades[n-1].EndDate) {
		last := &a.trades[n-1]

		// Running average weighted by the merge counter, not the fill
		// count: the first merge (prior == 0) replaces the prior values
		// outright. The symbol and date span stay fixed from the first
		// constituent fill.
		prior := float64(a.mergeCount)
		a.mergeCount++
		last.EntryPrice = (last.EntryPrice*prior + f.EntryPrice) / (prior + 1)
		last.ExitPrice = (last.ExitPrice*prior + f.ExitPrice) / (prior + 1)
		last.PnL = (last.PnL*prior + f.PerUnitPnL) / (prior + 1)
		return
	}

	a.mergeCount = 0
	a.trades = append(a.trades, types.Trade{
		Symbol:     f.Symbol,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		EntryPrice: f.EntryPrice,
		ExitPrice:  f.ExitPrice,
		PnL:        f.PerUnitPnL,
	})
}

// Trades returns the aggregated trade list, chronological by construction.
func (a *Aggregator) Trades() []types.Trade {
	return a.trades
}

// AccountError records a failed account fetch that was folded into an empty
// contribution instead of aborting the run.
type AccountError struct {
	Trader    string `json:"trader"`
	AccountID int64  `json:"account_id"`
	Err       error  `json:"-"`
	Reason    string `json:"reason"`
}

// Result holds the aggregated trades per trader plus the account fetch
// failures collected along the way.
type Result struct {
	Trades map[string][]types.Trade
	Errors []AccountError
}

// Collector drives fill collection for a whole board. Traders fan out across
// a bounded worker group; within one trader, accounts are fetched and folded
// strictly in order so the aggregator sees fills the way the feed emits them.
type Collector struct {
	source   broker.FillSource
	fetchers int
}

// NewCollector creates a collector. fetchers bounds how many traders are
// processed concurrently.
func NewCollector(source broker.FillSource, fetchers int) *Collector {
	if fetchers <= 0 {
		fetchers = 1
	}
	return &Collector{source: source, fetchers: fetchers}
}

// Collect fetches and aggregates every trader on the board. A failed account
// fetch contributes zero trades and is recorded; it never fails the run.
func (c *Collector) Collect(ctx context.Context, b *board.Board) *Result {
	window := b.Window()
	res := &Result{Trades: make(map[string][]types.Trade, len(b.Shares))}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(c.fetchers)

	for _, trader := range b.Traders() {
		trader := trader
		accounts := b.Shares[trader]

		g.Go(func() error {
			agg := NewAggregator(window)
			var accErrs []AccountError

			for _, accountID := range accounts {
				fills, err := c.source.FetchFills(ctx, accountID, window)
				logger.AccountFetch(ctx, trader, accountID, len(fills), err)
				entry := runlog.Entry{Board: b.Name, Trader: trader, AccountID: accountID, Fills: len(fills)}
				if err != nil {
					entry.Error = err.Error()
				}
				_ = runlog.Append(entry)
				if err != nil {
					accErrs = append(accErrs, AccountError{
						Trader:    trader,
						AccountID: accountID,
						Err:       err,
						Reason:    err.Error(),
					})
					continue
				}
				agg.AddFills(fills)
			}

			mu.Lock()
			res.Trades[trader] = agg.Trades()
			res.Errors = append(res.Errors, accErrs...)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return res
}
