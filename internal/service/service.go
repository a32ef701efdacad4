// Package service holds the consignment desk (drafts, dashboard, list and
// export) and the public storefront widgets (tracking and quotes).
package service

import (
	"context"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock_service

const (
	_defaultDraftTTL       = 2 * time.Hour
	_defaultDirectoryTTL   = 5 * time.Minute
	_defaultUsersPageLimit = 1000
	_slowOperation         = 500 * time.Millisecond
)

// Messages shown to the operator.
const (
	MsgConsignmentAdded   = "Consignment added successfully!"
	MsgCreateFailed       = "Failed to create entry"
	MsgDeleted            = "Entry deleted successfully!"
	MsgDeleteFailed       = "Failed to delete entry"
	MsgExportFailed       = "Export failed"
	MsgLoadFailed         = "Failed to load consignments data"
	MsgShipmentNotFound   = "Shipment not found. Please check the tracking number."
	MsgInvalidWeight      = "Please enter a valid weight"
	MsgQuoteFailed        = "Failed to calculate price"
	MsgTrackingCodeNeeded = "Please enter a tracking number"
)

type (
	ConsignmentStore interface {
		ListConsignments(ctx context.Context, f entity.ConsignmentFilter) ([]entity.Consignment, error)
		GetConsignment(ctx context.Context, id string) (*entity.Consignment, error)
		CreateConsignment(ctx context.Context, in entity.ConsignmentInput) (*entity.Consignment, error)
		DeleteConsignment(ctx context.Context, id string) error
	}

	Exporter interface {
		ExportConsignments(ctx context.Context, req entity.ExportRequest) (*entity.Export, error)
	}

	UserDirectory interface {
		ListUsers(ctx context.Context, skip, limit int) ([]entity.User, error)
	}

	InvoiceDirectory interface {
		ListInvoices(ctx context.Context) ([]entity.Invoice, error)
	}

	ShipmentTracker interface {
		TrackShipment(ctx context.Context, code string) (*entity.Shipment, error)
	}

	QuoteCalculator interface {
		CalculateQuote(ctx context.Context, req entity.QuoteRequest) (*entity.Quote, error)
	}
)
