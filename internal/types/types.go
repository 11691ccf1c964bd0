package types

import "time"

// Window is a board's reporting window. Start is never after End.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RawFill is one brokerage execution record as returned by the fill feed.
type RawFill struct {
	SymbolID     string    `json:"symbolId"`
	CreatedAt    time.Time `json:"createdAt"`
	ExitedAt     time.Time `json:"exitedAt"`
	EntryPrice   float64   `json:"entryPrice"`
	ExitPrice    float64   `json:"exitPrice"`
	PnL          float64   `json:"pnL"`
	Fees         float64   `json:"fees"`
	PositionSize float64   `json:"positionSize"`
}

// Trade is one or more fills merged into a single logical position span.
// Symbol and the date span are fixed from the first constituent fill; only
// the price and pnl fields are averaged by later merges.
type Trade struct {
	Symbol     string    `json:"symbol"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	PnL        float64   `json:"pnl"`
}

// TraderStats summarizes one trader's trade list. A trader with zero trades
// has the zero value.
type TraderStats struct {
	NumberOfTrades int     `json:"number_of_trades"`
	Won            int     `json:"won"`
	Lost           int     `json:"lost"`
	WinRate        float64 `json:"win_rate"`
	AverageProfit  float64 `json:"average_profit"`
	AverageLoss    float64 `json:"average_loss"`
	RewardRisk     float64 `json:"reward_risk"`
	Expectancy     float64 `json:"expectancy"`
	AveragePnL     float64 `json:"average_pnl"`
	PnL            float64 `json:"pnl"`
}

// Quote is one reference price tick.
type Quote struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}
