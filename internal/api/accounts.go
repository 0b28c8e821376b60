package api

import (
	"context"
	"fmt"
)

func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.get(ctx, "/api/accounts", &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, id int) (*Account, error) {
	var account Account
	if err := c.get(ctx, fmt.Sprintf("/api/accounts/%d", id), &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) CreateAccount(ctx context.Context, data AccountCreate) (*Account, error) {
	var account Account
	if err := c.post(ctx, "/api/accounts", data, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id int, data AccountUpdate) (*Account, error) {
	var account Account
	if err := c.put(ctx, fmt.Sprintf("/api/accounts/%d", id), data, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/accounts/%d", id))
}
