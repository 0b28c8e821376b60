package api

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// ListTransactionsOptions narrows a transaction listing server-side.
// Zero values mean no restriction.
type ListTransactionsOptions struct {
	Category  string
	StartDate *Date
	EndDate   *Date
}

func (c *Client) ListTransactions(ctx context.Context, opts ListTransactionsOptions) ([]Transaction, error) {
	values := url.Values{}

	if opts.Category != "" {
		values.Set("category", opts.Category)
	}

	if opts.StartDate != nil {
		values.Set("start_date", opts.StartDate.Format(time.DateOnly))
	}

	if opts.EndDate != nil {
		values.Set("end_date", opts.EndDate.Format(time.DateOnly))
	}

	var txs []Transaction
	if err := c.get(ctx, withQuery("/api/transactions", values), &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (c *Client) CreateTransaction(ctx context.Context, data TransactionCreate) (*Transaction, error) {
	var tx Transaction
	if err := c.post(ctx, "/api/transactions", data, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int, data TransactionUpdate) (*Transaction, error) {
	var tx Transaction
	if err := c.put(ctx, fmt.Sprintf("/api/transactions/%d", id), data, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/transactions/%d", id))
}
