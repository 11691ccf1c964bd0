package quotes

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"trader-board/internal/api"
	"trader-board/internal/types"
)

// Source fetches the reference quote series for one broker instrument id.
// The returned quotes are ordered by non-decreasing date.
type Source interface {
	FetchQuotes(ctx context.Context, symbol string) ([]types.Quote, error)
}

// Client fetches quotes from the Yahoo Finance v8 chart API, optionally
// through a CORS-style proxy prefix.
type Client struct {
	client    *api.Client
	symbolMap map[string]string
	interval  string
	dataRange string
}

var _ Source = (*Client)(nil)

// Options configures the quote client.
type Options struct {
	BaseURL   string
	ProxyURL  string
	Interval  string
	Range     string
	Timeout   time.Duration
	SymbolMap map[string]string
}

// NewClient creates a quote client. SymbolMap translates broker instrument
// ids to feed tickers before a request is built.
func NewClient(opts Options) *Client {
	return &Client{
		client: api.NewClient(
			api.WithBaseURL(opts.ProxyURL+opts.BaseURL),
			api.WithTimeout(opts.Timeout),
			api.WithLogging(true),
		),
		symbolMap: opts.SymbolMap,
		interval:  opts.Interval,
		dataRange: opts.Range,
	}
}

// chartResponse mirrors the nested result of the v8 chart endpoint.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// Symbols returns the broker instrument ids the client can resolve.
func (c *Client) Symbols() []string {
	symbols := make([]string, 0, len(c.symbolMap))
	for symbol := range c.symbolMap {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// FetchQuotes resolves the symbol through the static map, fetches the chart
// payload, and flattens the parallel timestamp/close arrays. Entries with a
// missing or zero close are dropped.
func (c *Client) FetchQuotes(ctx context.Context, symbol string) ([]types.Quote, error) {
	ticker, ok := c.symbolMap[symbol]
	if !ok {
		return nil, fmt.Errorf("no feed ticker mapped for symbol '%s'", symbol)
	}

	path := fmt.Sprintf("/%s?interval=%s&range=%s",
		url.PathEscape(ticker), url.QueryEscape(c.interval), url.QueryEscape(c.dataRange))

	resp, err := c.client.GET(ctx, path, api.YahooFinanceHeaders())
	if err != nil {
		return nil, fmt.Errorf("quote request for %s failed: %w", ticker, err)
	}

	var payload chartResponse
	if err := resp.ParseJSON(&payload); err != nil {
		return nil, fmt.Errorf("quote response for %s: %w", ticker, err)
	}

	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("quote response for %s contains no result", ticker)
	}
	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("quote response for %s contains no close series", ticker)
	}
	closes := result.Indicators.Quote[0].Close

	quotes := make([]types.Quote, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) {
			break
		}
		price := closes[i]
		if price == nil || *price == 0 {
			continue
		}
		quotes = append(quotes, types.Quote{
			Date:  time.Unix(ts, 0).UTC(),
			Price: *price,
		})
	}

	return quotes, nil
}
