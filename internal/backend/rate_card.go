package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kabir14815/rr/internal/entity"
)

// LookupRateCard asks the backend for the rate card matching q. A missing
// match is reported in the result, not as an error.
func (c *Client) LookupRateCard(ctx context.Context, q entity.RateCardQuery) (*entity.RateCardResult, error) {
	const op = "backend.LookupRateCard"

	query := url.Values{
		"user_id":          {q.UserID},
		"delivery_partner": {q.DeliveryPartner},
		"service_type":     {string(q.ServiceType)},
		"mode":             {string(q.Mode)},
	}
	switch q.ServiceType {
	case entity.ServiceCargo:
		query.Set("region", q.Locator)
	case entity.ServiceCourier:
		query.Set("zone", q.Locator)
	}

	var res entity.RateCardResult
	err := c.doJSON(ctx, request{
		op:     "rate_card_fetch",
		method: http.MethodGet,
		path:   "/api/rate-cards/fetch",
		query:  query,
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &res, nil
}
