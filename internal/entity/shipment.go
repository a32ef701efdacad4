package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "pending"
	StatusPickedUp       ShipmentStatus = "picked_up"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusCancelled      ShipmentStatus = "cancelled"
	StatusReturned       ShipmentStatus = "returned"
)

const neutralStatusColor = "#6b7280"

var statusColors = map[ShipmentStatus]string{
	StatusPending:        "#f59e0b",
	StatusPickedUp:       "#3b82f6",
	StatusInTransit:      "#6366f1",
	StatusOutForDelivery: "#8b5cf6",
	StatusDelivered:      "#10b981",
	StatusCancelled:      "#ef4444",
	StatusReturned:       "#6b7280",
}

// Color maps a status to its timeline colour; unknown statuses get the neutral grey.
func (s ShipmentStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return neutralStatusColor
}

func (s ShipmentStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

type Place struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type TrackingEvent struct {
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Timestamp   time.Time      `json:"timestamp"`
	Description string         `json:"description,omitempty"`
}

type Shipment struct {
	TrackingNumber  string          `json:"tracking_number"`
	Status          ShipmentStatus  `json:"status"`
	Origin          Place           `json:"origin"`
	Destination     Place           `json:"destination"`
	TrackingHistory []TrackingEvent `json:"tracking_history"`
}

type QuoteRequest struct {
	OriginPincode      string          `json:"origin_pincode"      validate:"required,max=10"`
	DestinationPincode string          `json:"destination_pincode" validate:"required,max=10"`
	WeightKg           decimal.Decimal `json:"weight_kg"`
	ShipmentType       string          `json:"shipment_type"       validate:"omitempty,oneof=document parcel freight"`
	ServiceType        string          `json:"service_type"        validate:"omitempty,oneof=standard express"`
}

type Quote struct {
	Zone          string          `json:"zone"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	WeightCharges decimal.Decimal `json:"weight_charges"`
	FuelSurcharge decimal.Decimal `json:"fuel_surcharge"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	EstimatedDays int             `json:"estimated_days"`
}
