package stats

import (
	"testing"

	"trader-board/internal/types"
)

func TestDiv(t *testing.T) {
	if got := Div(5, 0); got != 0 {
		t.Errorf("Expected Div(5, 0) == 0, got %f", got)
	}
	if got := Div(0, 0); got != 0 {
		t.Errorf("Expected Div(0, 0) == 0, got %f", got)
	}
	if got := Div(6, 3); got != 2 {
		t.Errorf("Expected Div(6, 3) == 2, got %f", got)
	}
}

func TestComputeNoTrades(t *testing.T) {
	s := Compute(nil)
	if s != (types.TraderStats{}) {
		t.Errorf("Expected all-zero stats for a trader with no trades, got %+v", s)
	}
}

func TestComputeExample(t *testing.T) {
	s := Compute([]types.Trade{
		{PnL: 10},
		{PnL: -5},
	})

	if s.NumberOfTrades != 2 {
		t.Errorf("Expected 2 trades, got %d", s.NumberOfTrades)
	}
	if s.Won != 1 || s.Lost != 1 {
		t.Errorf("Expected won=1 lost=1, got won=%d lost=%d", s.Won, s.Lost)
	}
	if s.WinRate != 0.5 {
		t.Errorf("Expected win rate 0.5, got %f", s.WinRate)
	}
	if s.AverageProfit != 10 {
		t.Errorf("Expected average profit 10, got %f", s.AverageProfit)
	}
	if s.AverageLoss != 5 {
		t.Errorf("Expected average loss 5, got %f", s.AverageLoss)
	}
	if s.RewardRisk != 2 {
		t.Errorf("Expected reward/risk 2, got %f", s.RewardRisk)
	}
	if s.Expectancy != 0.5 {
		t.Errorf("Expected expectancy 0.5, got %f", s.Expectancy)
	}
	if s.PnL != 5 {
		t.Errorf("Expected total pnl 5, got %f", s.PnL)
	}
	if s.AveragePnL != 2.5 {
		t.Errorf("Expected average pnl 2.5, got %f", s.AveragePnL)
	}
}

func TestComputeZeroPnLCountsAsWin(t *testing.T) {
	s := Compute([]types.Trade{{PnL: 0}})
	if s.Won != 1 || s.Lost != 0 {
		t.Errorf("Expected a zero-pnl trade to count as won, got won=%d lost=%d", s.Won, s.Lost)
	}
}

func TestComputeAllTradersIndependent(t *testing.T) {
	all := ComputeAll(map[string][]types.Trade{
		"alice": {{PnL: 10}, {PnL: -5}},
		"bob":   {},
	})

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 traders, got %d", len(all))
	}
	if all["alice"].PnL != 5 {
		t.Errorf("Expected alice pnl 5, got %f", all["alice"].PnL)
	}
	if all["bob"] != (types.TraderStats{}) {
		t.Errorf("Expected bob stats all-zero, got %+v", all["bob"])
	}
}
