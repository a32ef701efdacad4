package entity

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Charges are the rate-sourced pricing inputs of a consignment.
// FuelChargePercent and GSTPercent are percentages, FOV is a flat amount.
type Charges struct {
	BaseRate          decimal.Decimal `json:"base_rate"`
	DocketCharge      decimal.Decimal `json:"docket_charges"`
	ODACharge         decimal.Decimal `json:"oda_charge"`
	FOV               decimal.Decimal `json:"fov"`
	FuelChargePercent decimal.Decimal `json:"fuel_charge"`
	GSTPercent        decimal.Decimal `json:"gst"`
}

// Draft is the in-progress consignment edited by an operator.
//
// Locator holds the region for cargo and the courier zone for courier; its
// meaning follows ServiceType, so the two can never both be set.
type Draft struct {
	Date               Day             `json:"date"                validate:"required"`
	UserID             string          `json:"user_id"             validate:"required"`
	SenderName         string          `json:"name"`
	Destination        string          `json:"destination"         validate:"required,max=200"`
	DestinationCity    string          `json:"destination_city"    validate:"max=100"`
	DestinationState   string          `json:"destination_state"   validate:"max=100"`
	DestinationPincode string          `json:"destination_pincode" validate:"omitempty,numeric,len=6"`
	ProductName        string          `json:"product_name"        validate:"required,max=200"`
	Pieces             int             `json:"pieces"              validate:"gte=1"`
	Weight             decimal.Decimal `json:"weight"`
	InvoiceID          string          `json:"invoice_id"`
	InvoiceNo          string          `json:"invoice_no"`

	DeliveryPartner string        `json:"delivery_partner"`
	ServiceType     ServiceType   `json:"service_type"`
	Mode            TransportMode `json:"mode"`
	Locator         string        `json:"-"`
	Zone            string        `json:"zone" validate:"required"`

	Charges
	DeclaredValue decimal.Decimal `json:"value"`
	RateCardID    string          `json:"rate_card_id"`

	Box1Dimensions string `json:"box1_dimensions" validate:"max=50"`
	Box2Dimensions string `json:"box2_dimensions" validate:"max=50"`
	Box3Dimensions string `json:"box3_dimensions" validate:"max=50"`
}

func NewDraft() Draft {
	return Draft{
		Date:   Today(),
		Pieces: 1,
		Zone:   DefaultZone,
	}
}

func (d Draft) Region() string {
	if d.ServiceType == ServiceCargo {
		return d.Locator
	}
	return ""
}

func (d Draft) CourierZone() string {
	if d.ServiceType == ServiceCourier {
		return d.Locator
	}
	return ""
}

// RateSelectionStarted reports whether partner, service type and mode are all set,
// which makes a resolved rate card mandatory for submission.
func (d Draft) RateSelectionStarted() bool {
	return d.DeliveryPartner != "" && d.ServiceType != "" && d.Mode != ""
}

// LookupKey returns the rate card query for the draft and whether it is complete.
func (d Draft) LookupKey() (RateCardQuery, bool) {
	q := RateCardQuery{
		UserID:          d.UserID,
		DeliveryPartner: d.DeliveryPartner,
		ServiceType:     d.ServiceType,
		Mode:            d.Mode,
		Locator:         d.Locator,
	}
	return q, q.Complete()
}

func (d Draft) MarshalJSON() ([]byte, error) {
	type plain Draft
	return json.Marshal(struct {
		plain
		Region      string `json:"region"`
		CourierZone string `json:"courier_zone"`
	}{plain(d), d.Region(), d.CourierZone()})
}

// Input converts the draft into the create request understood by the consignment store.
func (d Draft) Input() ConsignmentInput {
	return ConsignmentInput{
		Date:               d.Date,
		UserID:             d.UserID,
		Name:               d.SenderName,
		Destination:        d.Destination,
		DestinationCity:    d.DestinationCity,
		DestinationState:   d.DestinationState,
		DestinationPincode: d.DestinationPincode,
		ProductName:        d.ProductName,
		Pieces:             d.Pieces,
		Weight:             d.Weight,
		InvoiceID:          d.InvoiceID,
		InvoiceNo:          d.InvoiceNo,
		DeliveryPartner:    d.DeliveryPartner,
		ServiceType:        d.ServiceType,
		Mode:               d.Mode,
		Region:             d.Region(),
		CourierZone:        d.CourierZone(),
		Zone:               d.Zone,
		Charges:            d.Charges,
		Value:              d.DeclaredValue,
		RateCardID:         d.RateCardID,
		Box1Dimensions:     d.Box1Dimensions,
		Box2Dimensions:     d.Box2Dimensions,
		Box3Dimensions:     d.Box3Dimensions,
	}
}
