package api

import (
	"context"
	"net/url"
)

// ListCategories lists categories, optionally restricted to one type so
// expense pickers never see income categories and vice versa.
func (c *Client) ListCategories(ctx context.Context, categoryType CategoryType) ([]Category, error) {
	values := url.Values{}

	if categoryType != "" {
		values.Set("category_type", string(categoryType))
	}

	var categories []Category
	if err := c.get(ctx, withQuery("/api/categories", values), &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, data CategoryCreate) (*Category, error) {
	var category Category
	if err := c.post(ctx, "/api/categories", data, &category); err != nil {
		return nil, err
	}

	return &category, nil
}
