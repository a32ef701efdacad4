package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Kabir14815/rr/internal/entity"
)

func (c *Client) ListConsignments(ctx context.Context, f entity.ConsignmentFilter) ([]entity.Consignment, error) {
	const op = "backend.ListConsignments"

	limit := f.Limit
	if limit == 0 {
		limit = entity.DefaultListLimit
	}
	query := url.Values{
		"skip":  {strconv.Itoa(f.Skip)},
		"limit": {strconv.Itoa(limit)},
	}

	path := "/api/consignments/"
	switch {
	case f.InvoiceID != "":
		path = "/api/consignments/by-invoice/" + url.PathEscape(f.InvoiceID)
	case f.UserID != "" && f.StartDate.IsZero() && f.EndDate.IsZero() && f.Zone == "":
		path = "/api/consignments/by-user/" + url.PathEscape(f.UserID)
	default:
		if !f.StartDate.IsZero() {
			query.Set("start_date", f.StartDate.String())
		}
		if !f.EndDate.IsZero() {
			query.Set("end_date", f.EndDate.String())
		}
		if f.Zone != "" {
			query.Set("zone", f.Zone)
		}
		if f.UserID != "" {
			query.Set("user_id", f.UserID)
		}
	}

	var out []entity.Consignment
	err := c.doJSON(ctx, request{
		op:     "consignment_list",
		method: http.MethodGet,
		path:   path,
		query:  query,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (c *Client) GetConsignment(ctx context.Context, id string) (*entity.Consignment, error) {
	const op = "backend.GetConsignment"

	var out entity.Consignment
	err := c.doJSON(ctx, request{
		op:     "consignment_get",
		method: http.MethodGet,
		path:   "/api/consignments/" + url.PathEscape(id),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &out, nil
}

func (c *Client) CreateConsignment(ctx context.Context, in entity.ConsignmentInput) (*entity.Consignment, error) {
	const op = "backend.CreateConsignment"

	var out entity.Consignment
	err := c.doJSON(ctx, request{
		op:     "consignment_create",
		method: http.MethodPost,
		path:   "/api/consignments/",
		body:   in,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &out, nil
}

func (c *Client) DeleteConsignment(ctx context.Context, id string) error {
	const op = "backend.DeleteConsignment"

	err := c.doJSON(ctx, request{
		op:     "consignment_delete",
		method: http.MethodDelete,
		path:   "/api/consignments/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ExportConsignments downloads the spreadsheet rendered by the backend for req.
func (c *Client) ExportConsignments(ctx context.Context, req entity.ExportRequest) (*entity.Export, error) {
	const op = "backend.ExportConsignments"

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := url.Values{}
	switch req.Mode {
	case entity.ExportSelected:
		query.Set("ids", strings.Join(req.IDs, ","))
	case entity.ExportDateRange:
		query.Set("start_date", req.StartDate.String())
		query.Set("end_date", req.EndDate.String())
	case entity.ExportZone:
		query.Set("zone", req.Zone)
	}

	resp, err := c.do(ctx, request{
		op:     "consignment_export",
		method: http.MethodGet,
		path:   "/api/consignments/export/excel",
		query:  query,
		accept: entity.SpreadsheetContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w: %w", op, entity.ErrTransport, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = entity.SpreadsheetContentType
	}

	return &entity.Export{
		FileName:    entity.ExportFileName(c.now()),
		ContentType: contentType,
		Content:     content,
	}, nil
}
