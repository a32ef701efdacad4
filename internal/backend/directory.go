package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kabir14815/rr/internal/entity"
)

// ListUsers returns one page of the admin user directory.
func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]entity.User, error) {
	const op = "backend.ListUsers"

	var out []entity.User
	err := c.doJSON(ctx, request{
		op:     "user_list",
		method: http.MethodGet,
		path:   "/api/auth/admin/users",
		query: url.Values{
			"skip":  {strconv.Itoa(skip)},
			"limit": {strconv.Itoa(limit)},
		},
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (c *Client) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	const op = "backend.ListInvoices"

	var out []entity.Invoice
	err := c.doJSON(ctx, request{
		op:     "invoice_list",
		method: http.MethodGet,
		path:   "/api/invoices/",
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
