package broker

import (
	"context"
	"fmt"
	"time"

	"trader-board/internal/api"
	"trader-board/internal/types"
)

// FillSource fetches the raw execution records for one trading account over
// a reporting window. Implementations must return fills in non-decreasing
// createdAt order; the aggregator does not sort.
type FillSource interface {
	FetchFills(ctx context.Context, accountID int64, window types.Window) ([]types.RawFill, error)
}

// Client fetches fills from the broker's Trade/range endpoint.
type Client struct {
	client *api.Client
}

var _ FillSource = (*Client)(nil)

// NewClient creates a fill client against the given broker base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
	}
}

type rangeRequest struct {
	TradingAccountID int64  `json:"tradingAccountId"`
	Start            string `json:"start"`
	End              string `json:"end"`
}

// FetchFills POSTs the account id and window and decodes the fill array.
func (c *Client) FetchFills(ctx context.Context, accountID int64, window types.Window) ([]types.RawFill, error) {
	payload := rangeRequest{
		TradingAccountID: accountID,
		Start:            window.Start.UTC().Format(time.RFC3339),
		End:              window.End.UTC().Format(time.RFC3339),
	}

	resp, err := c.client.POST(ctx, "/Trade/range", payload)
	if err != nil {
		return nil, fmt.Errorf("fill range request for account %d failed: %w", accountID, err)
	}

	var fills []types.RawFill
	if err := resp.ParseJSON(&fills); err != nil {
		return nil, fmt.Errorf("fill range response for account %d: %w", accountID, err)
	}

	return fills, nil
}
