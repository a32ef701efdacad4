package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consignment is a persisted shipment record as returned by the consignment store.
// Total is computed and stored by the store and is displayed as-is.
type Consignment struct {
	ID                 string          `json:"_id"`
	SrNo               int64           `json:"sr_no"`
	ConsignmentNo      string          `json:"consignment_no"`
	Date               Day             `json:"date"`
	Name               string          `json:"name"`
	UserID             string          `json:"user_id"`
	Destination        string          `json:"destination"`
	DestinationCity    string          `json:"destination_city,omitempty"`
	DestinationState   string          `json:"destination_state,omitempty"`
	DestinationPincode string          `json:"destination_pincode,omitempty"`
	Pieces             int             `json:"pieces"`
	Weight             decimal.Decimal `json:"weight"`
	ProductName        string          `json:"product_name"`
	InvoiceID          string          `json:"invoice_id,omitempty"`
	InvoiceNo          string          `json:"invoice_no,omitempty"`
	Zone               string          `json:"zone"`
	DeliveryPartner    string          `json:"delivery_partner,omitempty"`
	ServiceType        ServiceType     `json:"service_type,omitempty"`
	Mode               TransportMode   `json:"mode,omitempty"`
	Region             string          `json:"region,omitempty"`
	CourierZone        string          `json:"courier_zone,omitempty"`
	Charges
	Value          decimal.Decimal `json:"value"`
	Total          decimal.Decimal `json:"total"`
	RateCardID     string          `json:"rate_card_id,omitempty"`
	ShipmentID     string          `json:"shipment_id,omitempty"`
	Box1Dimensions string          `json:"box1_dimensions,omitempty"`
	Box2Dimensions string          `json:"box2_dimensions,omitempty"`
	Box3Dimensions string          `json:"box3_dimensions,omitempty"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
}

// ConsignmentInput is the create request sent to the consignment store.
type ConsignmentInput struct {
	Date               Day             `json:"date"`
	UserID             string          `json:"user_id"`
	Name               string          `json:"name"`
	Destination        string          `json:"destination"`
	DestinationCity    string          `json:"destination_city"`
	DestinationState   string          `json:"destination_state"`
	DestinationPincode string          `json:"destination_pincode"`
	ProductName        string          `json:"product_name"`
	Pieces             int             `json:"pieces"`
	Weight             decimal.Decimal `json:"weight"`
	InvoiceID          string          `json:"invoice_id"`
	InvoiceNo          string          `json:"invoice_no"`
	DeliveryPartner    string          `json:"delivery_partner"`
	ServiceType        ServiceType     `json:"service_type"`
	Mode               TransportMode   `json:"mode"`
	Region             string          `json:"region"`
	CourierZone        string          `json:"courier_zone"`
	Zone               string          `json:"zone"`
	Charges
	Value          decimal.Decimal `json:"value"`
	RateCardID     string          `json:"rate_card_id"`
	Box1Dimensions string          `json:"box1_dimensions"`
	Box2Dimensions string          `json:"box2_dimensions"`
	Box3Dimensions string          `json:"box3_dimensions"`
}

// ConsignmentFilter narrows a consignment listing. Zero values mean "no filter".
type ConsignmentFilter struct {
	Skip      int    `form:"skip"       validate:"gte=0"`
	Limit     int    `form:"limit"      validate:"gte=0,lte=1000"`
	StartDate Day    `form:"-"`
	EndDate   Day    `form:"-"`
	Zone      string `form:"zone"       validate:"omitempty,oneof=LOCAL ZONAL METRO ROI WEST NORTH SOUTH EAST"`
	UserID    string `form:"user_id"`
	InvoiceID string `form:"invoice_id"`
}

const DefaultListLimit = 100
