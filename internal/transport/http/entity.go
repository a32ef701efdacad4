package httpt

import (
	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// UpdateDraftRequest carries form edits, applied in order.
type UpdateDraftRequest struct {
	Changes []draft.SetField `json:"changes" binding:"required,min=1,dive"`
}

type SubmitResult struct {
	Consignment *entity.Consignment `json:"consignment"`
	Draft       *service.DraftView  `json:"draft"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// QuoteRequest keeps the weight undecoded so a bad weight can be told apart
// from a malformed body.
type QuoteRequest struct {
	OriginPincode      string          `json:"origin_pincode"`
	DestinationPincode string          `json:"destination_pincode"`
	WeightKg           json.RawMessage `json:"weight_kg"`
	ShipmentType       string          `json:"shipment_type"`
	ServiceType        string          `json:"service_type"`
}

// Entity returns the domain request; a missing weight is zero and left to the
// storefront to reject.
func (r QuoteRequest) Entity() (entity.QuoteRequest, error) {
	var weight decimal.Decimal
	if len(r.WeightKg) > 0 {
		if err := weight.UnmarshalJSON(r.WeightKg); err != nil {
			return entity.QuoteRequest{}, err
		}
	}

	return entity.QuoteRequest{
		OriginPincode:      r.OriginPincode,
		DestinationPincode: r.DestinationPincode,
		WeightKg:           weight,
		ShipmentType:       r.ShipmentType,
		ServiceType:        r.ServiceType,
	}, nil
}
