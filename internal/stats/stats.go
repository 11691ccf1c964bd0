package stats

import (
	"math"

	"trader-board/internal/types"
)

// Div is guarded division: it returns 0 when the denominator is 0, so stats
// over an empty trade list come out all-zero instead of NaN.
func Div(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Compute reduces one trader's trade list into summary metrics.
func Compute(trades []types.Trade) types.TraderStats {
	var won, lost int
	var profit, loss float64

	for _, trade := range trades {
		if trade.PnL >= 0 {
			won++
			profit += trade.PnL
		} else {
			lost++
			loss += math.Abs(trade.PnL)
		}
	}

	total := won + lost
	winRate := Div(float64(won), float64(total))
	averageProfit := Div(profit, float64(won))
	averageLoss := Div(loss, float64(lost))
	rewardRisk := Div(averageProfit, averageLoss)

	// Expected value per trade, in units of average-loss-normalized risk.
	expectancy := winRate*rewardRisk - (1-winRate)*1

	pnl := profit - loss

	return types.TraderStats{
		NumberOfTrades: len(trades),
		Won:            won,
		Lost:           lost,
		WinRate:        winRate,
		AverageProfit:  averageProfit,
		AverageLoss:    averageLoss,
		RewardRisk:     rewardRisk,
		Expectancy:     expectancy,
		AveragePnL:     Div(pnl, float64(total)),
		PnL:            pnl,
	}
}

// ComputeAll computes stats for every trader independently. No ordering is
// implied among traders; consumers sort as needed.
func ComputeAll(trades map[string][]types.Trade) map[string]types.TraderStats {
	all := make(map[string]types.TraderStats, len(trades))
	for trader, list := range trades {
		all[trader] = Compute(list)
	}
	return all
}
