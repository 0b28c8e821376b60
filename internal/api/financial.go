package api

import (
	"context"
	"fmt"
	"io"
	"time"
)

// GetFinancialData fetches the dashboard aggregates for a year.
func (c *Client) GetFinancialData(ctx context.Context, year int) (*FinancialData, error) {
	var data FinancialData
	if err := c.get(ctx, fmt.Sprintf("/api/financial-data/%d", year), &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// GetCurrentFinancialData fetches the dashboard aggregates for the
// current year.
func (c *Client) GetCurrentFinancialData(ctx context.Context) (*FinancialData, error) {
	return c.GetFinancialData(ctx, time.Now().Year())
}

// UploadStatement sends a bank statement for server-side processing.
func (c *Client) UploadStatement(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	var result UploadResult
	if err := c.upload(ctx, "/statements/upload", filename, file, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
