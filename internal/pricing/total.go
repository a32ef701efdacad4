// Package pricing computes the live consignment total shown while a draft is edited.
//
// The store keeps its own authoritative total; values produced here are a preview.
package pricing

import (
	"github.com/Kabir14815/rr/internal/entity"

	"github.com/shopspring/decimal"
)

var _hundred = decimal.NewFromInt(100)

// Breakdown holds every intermediate amount of the total calculation.
type Breakdown struct {
	BaseAmount decimal.Decimal `json:"base_amount"`
	FuelAmount decimal.Decimal `json:"fuel_amount"`
	FOV        decimal.Decimal `json:"fov"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	GSTAmount  decimal.Decimal `json:"gst_amount"`
	Total      decimal.Decimal `json:"total"`
}

// CalculateTotal applies fuel surcharge to base+docket+ODA, adds FOV, then applies GST
// to the subtotal. Declared value never contributes.
func CalculateTotal(c entity.Charges) Breakdown {
	base := c.BaseRate.Add(c.DocketCharge).Add(c.ODACharge)
	fuel := base.Mul(c.FuelChargePercent).Div(_hundred)
	subtotal := base.Add(c.FOV).Add(fuel)
	gst := subtotal.Mul(c.GSTPercent).Div(_hundred)

	return Breakdown{
		BaseAmount: base,
		FuelAmount: fuel,
		FOV:        c.FOV,
		Subtotal:   subtotal,
		GSTAmount:  gst,
		Total:      subtotal.Add(gst),
	}
}

// Display renders the total with two decimal places.
func (b Breakdown) Display() string {
	return b.Total.StringFixed(2)
}
