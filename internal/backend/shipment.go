package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kabir14815/rr/internal/entity"
)

func (c *Client) TrackShipment(ctx context.Context, code string) (*entity.Shipment, error) {
	const op = "backend.TrackShipment"

	var out entity.Shipment
	err := c.doJSON(ctx, request{
		op:     "shipment_track",
		method: http.MethodGet,
		path:   "/api/shipments/track/" + url.PathEscape(code),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &out, nil
}

func (c *Client) CalculateQuote(ctx context.Context, req entity.QuoteRequest) (*entity.Quote, error) {
	const op = "backend.CalculateQuote"

	var out entity.Quote
	err := c.doJSON(ctx, request{
		op:     "pricing_calculate",
		method: http.MethodPost,
		path:   "/api/pricing/calculate",
		body:   req,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &out, nil
}
