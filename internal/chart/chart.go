package chart

import (
	"sort"
	"time"

	"trader-board/internal/types"
)

// maxTimestampPad extends the quote domain so trades closing slightly after
// the last quote tick still fit.
const maxTimestampPad = 20 * time.Minute

// defaultViewportSpan is how far back from the last quote the default zoom
// window starts.
const defaultViewportSpan = 24 * time.Hour

// Point is one plot point carrying the trade's pnl for display. A point with
// all fields nil is a separator; it keeps consecutive trades in the same
// bucket from being drawn as one connected line.
type Point struct {
	Date  *time.Time `json:"date"`
	Price *float64   `json:"price"`
	PnL   *float64   `json:"pnl"`
}

// Separator returns true for the null point emitted between trades.
func (p Point) Separator() bool {
	return p.Date == nil && p.Price == nil
}

// Series is one trader's winning or losing line.
type Series struct {
	Trader  string  `json:"trader"`
	Winning bool    `json:"winning"`
	Points  []Point `json:"points"`
}

// Viewport is the advisory default zoom window for the consuming view. It is
// zero when the quote series is empty.
type Viewport struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Chart is the full renderable payload: the raw price line, per-trader
// win/loss segment series, and the default viewport.
type Chart struct {
	PriceLine []types.Quote `json:"price_line"`
	Series    []Series      `json:"series"`
	Viewport  Viewport      `json:"viewport"`
}

// Build derives the visible time/price domain from the quote series and
// buckets each trader's trades into win/loss segments inside it. A trade is
// included only when its whole span and its entry price fit the domain;
// anything touching the edge of the axes is excluded outright rather than
// clipped. Pure function of its inputs.
func Build(quotes []types.Quote, trades map[string][]types.Trade) *Chart {
	out := &Chart{PriceLine: quotes, Series: []Series{}}
	if len(quotes) == 0 {
		// No quotes means no domain: nothing can be placed on the axes.
		out.PriceLine = []types.Quote{}
		return out
	}

	minTS := quotes[0].Date
	maxTS := quotes[0].Date
	minPrice := quotes[0].Price
	maxPrice := quotes[0].Price
	for _, q := range quotes[1:] {
		if q.Date.Before(minTS) {
			minTS = q.Date
		}
		if q.Date.After(maxTS) {
			maxTS = q.Date
		}
		if q.Price < minPrice {
			minPrice = q.Price
		}
		if q.Price > maxPrice {
			maxPrice = q.Price
		}
	}
	maxTS = maxTS.Add(maxTimestampPad)

	traders := make([]string, 0, len(trades))
	for trader := range trades {
		traders = append(traders, trader)
	}
	sort.Strings(traders)

	for _, trader := range traders {
		winning := []Point{}
		losing := []Point{}

		for _, trade := range trades[trader] {
			if trade.StartDate.Before(minTS) {
				continue
			}
			if trade.EndDate.After(maxTS) {
				continue
			}
			if trade.EntryPrice < minPrice || trade.EntryPrice > maxPrice {
				continue
			}

			target := &losing
			if trade.EntryPrice >= trade.ExitPrice {
				target = &winning
			}
			*target = append(*target, tradePoints(trade)...)
		}

		out.Series = append(out.Series,
			Series{Trader: trader, Winning: true, Points: winning},
			Series{Trader: trader, Winning: false, Points: losing},
		)
	}

	last := quotes[len(quotes)-1].Date
	out.Viewport = Viewport{Start: last.Add(-defaultViewportSpan), End: maxTS}

	return out
}

func tradePoints(trade types.Trade) []Point {
	start, end := trade.StartDate, trade.EndDate
	entry, exit := trade.EntryPrice, trade.ExitPrice
	pnl := trade.PnL
	return []Point{
		{Date: &start, Price: &entry, PnL: &pnl},
		{Date: &end, Price: &exit, PnL: &pnl},
		{},
	}
}
