package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	_defaultShipmentType = "parcel"
	_defaultServiceLevel = "standard"
)

// GSTLabel is how the quote breakdown names its tax line.
const GSTLabel = "GST (18%)"

type TimelineEntry struct {
	Status      entity.ShipmentStatus `json:"status"`
	Label       string                `json:"label"`
	Color       string                `json:"color"`
	Location    string                `json:"location"`
	Timestamp   time.Time             `json:"timestamp"`
	Description string                `json:"description,omitempty"`
}

// Tracking is a shipment as the public widget shows it: newest event first.
type Tracking struct {
	TrackingNumber string                `json:"tracking_number"`
	Status         entity.ShipmentStatus `json:"status"`
	StatusLabel    string                `json:"status_label"`
	StatusColor    string                `json:"status_color"`
	Origin         string                `json:"origin"`
	Destination    string                `json:"destination"`
	Timeline       []TimelineEntry       `json:"timeline"`
}

type QuoteView struct {
	entity.Quote
	GSTLabel string `json:"gst_label"`
}

// Storefront backs the public tracking and price widgets.
type Storefront struct {
	tracker  ShipmentTracker
	quotes   QuoteCalculator
	log      logger.Logger
	validate *validator.Validate
}

func NewStorefront(tracker ShipmentTracker, quotes QuoteCalculator, log logger.Logger) (*Storefront, error) {
	if tracker == nil || quotes == nil || log == nil {
		return nil, errors.New("service.NewStorefront: tracker, quote calculator and logger are required")
	}
	return &Storefront{
		tracker:  tracker,
		quotes:   quotes,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Track looks a shipment up by its tracking number. Every failure, including a
// transport one, is reported as entity.ErrShipmentNotFound.
func (s *Storefront) Track(ctx context.Context, code string) (*Tracking, error) {
	const op = "service.Storefront.Track"

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%s: %w", op, &entity.ValidationError{
			Field: "tracking_number", Message: MsgTrackingCodeNeeded,
		})
	}

	shipment, err := s.tracker.TrackShipment(ctx, code)
	if err != nil {
		s.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "shipment lookup failed",
			logger.String("tracking_number", code),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, entity.ErrShipmentNotFound)
	}

	return newTracking(shipment), nil
}

func newTracking(sh *entity.Shipment) *Tracking {
	timeline := lo.Map(sh.TrackingHistory, func(e entity.TrackingEvent, _ int) TimelineEntry {
		return TimelineEntry{
			Status:      e.Status,
			Label:       e.Status.Label(),
			Color:       e.Status.Color(),
			Location:    e.Location,
			Timestamp:   e.Timestamp,
			Description: e.Description,
		}
	})

	return &Tracking{
		TrackingNumber: sh.TrackingNumber,
		Status:         sh.Status,
		StatusLabel:    sh.Status.Label(),
		StatusColor:    sh.Status.Color(),
		Origin:         sh.Origin.City,
		Destination:    sh.Destination.City,
		Timeline:       lo.Reverse(timeline),
	}
}

// Quote prices a shipment. Weight must be positive; shipment type and
// service level default to parcel and standard.
func (s *Storefront) Quote(ctx context.Context, req entity.QuoteRequest) (*QuoteView, error) {
	const op = "service.Storefront.Quote"

	req.OriginPincode = strings.TrimSpace(req.OriginPincode)
	req.DestinationPincode = strings.TrimSpace(req.DestinationPincode)
	if req.ShipmentType == "" {
		req.ShipmentType = _defaultShipmentType
	}
	if req.ServiceType == "" {
		req.ServiceType = _defaultServiceLevel
	}

	if !req.WeightKg.IsPositive() {
		return nil, fmt.Errorf("%s: %w", op, &entity.ValidationError{Field: "weight_kg", Message: MsgInvalidWeight})
	}
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, fmt.Errorf("%s: %w", op, quoteFieldError(fieldErrs[0]))
		}
		return nil, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidData, err)
	}

	quote, err := s.quotes.CalculateQuote(ctx, req)
	if err != nil {
		s.log.Ctx(ctx).LogAttrs(ctx, logger.ErrorLevel, "price calculation failed",
			logger.String("origin", req.OriginPincode),
			logger.String("destination", req.DestinationPincode),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &QuoteView{Quote: *quote, GSTLabel: GSTLabel}, nil
}

func quoteFieldError(fe validator.FieldError) *entity.ValidationError {
	labels := map[string]string{
		"OriginPincode":      "Origin pincode",
		"DestinationPincode": "Destination pincode",
		"ShipmentType":       "Shipment type",
		"ServiceType":        "Service type",
	}
	label := labels[fe.Field()]

	msg := label + " is invalid"
	if fe.Tag() == "required" {
		msg = label + " is required"
	}
	return &entity.ValidationError{Field: fe.Field(), Message: msg}
}
