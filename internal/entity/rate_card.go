package entity

import "github.com/shopspring/decimal"

// RateCardQuery is the lookup key for a rate card. Locator is sent as
// "region" for cargo and as "zone" for courier.
type RateCardQuery struct {
	UserID          string
	DeliveryPartner string
	ServiceType     ServiceType
	Mode            TransportMode
	Locator         string
}

func (q RateCardQuery) Complete() bool {
	if q.UserID == "" || q.DeliveryPartner == "" || q.ServiceType == "" || q.Mode == "" {
		return false
	}
	switch q.ServiceType {
	case ServiceCargo, ServiceCourier:
		return q.Locator != ""
	default:
		return true
	}
}

// RateCard is the server-held pricing record matched by a query.
type RateCard struct {
	ID           string          `json:"_id"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	DocketCharge decimal.Decimal `json:"docket_charge"`
	ODI          decimal.Decimal `json:"odi"`
	FOV          decimal.Decimal `json:"fov"`
	FuelCharge   decimal.Decimal `json:"fuel_charge"`
	GST          decimal.Decimal `json:"gst"`
}

func (rc RateCard) Charges() Charges {
	return Charges{
		BaseRate:          rc.BaseRate,
		DocketCharge:      rc.DocketCharge,
		ODACharge:         rc.ODI,
		FOV:               rc.FOV,
		FuelChargePercent: rc.FuelCharge,
		GSTPercent:        rc.GST,
	}
}

type RateCardResult struct {
	Found    bool      `json:"found"`
	RateCard *RateCard `json:"rate_card,omitempty"`
	Message  string    `json:"message,omitempty"`
}
