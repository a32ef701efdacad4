package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kabir14815/rr/internal/entity"

	"github.com/shopspring/decimal"
)

// Reduce applies a to s. It returns the next state and, when the lookup key
// changed to a complete one, the lookup the caller must run. On error s is
// returned unchanged.
func Reduce(s State, a Action) (State, *LookupRequest, error) {
	const op = "draft.Reduce"

	switch a := a.(type) {
	case SetField:
		return setField(s, a)

	case BeginLookup:
		if s.Current(a.Generation) && s.Lookup == LookupEligible {
			s.Lookup = LookupFetching
		}
		return s, nil, nil

	case ApplyRateCard:
		if !s.Current(a.Generation) || !s.awaitingLookup() {
			return s, nil, nil
		}
		s.Draft.Charges = a.Card.Charges()
		s.Draft.RateCardID = a.Card.ID
		s.Lookup = LookupResolved
		s.Notice = &Notice{Kind: NoticeSuccess, Text: MsgRateCardApplied}
		return s, nil, nil

	case ResetPricing:
		if !s.Current(a.Generation) || !s.awaitingLookup() {
			return s, nil, nil
		}
		clearPricing(&s.Draft)
		s.Lookup = LookupNotFound
		msg := a.Message
		if msg == "" {
			msg = MsgRateCardNotFound
		}
		s.Notice = &Notice{Kind: NoticeError, Text: msg}
		return s, nil, nil

	case FailLookup:
		if !s.Current(a.Generation) || !s.awaitingLookup() {
			return s, nil, nil
		}
		s.Lookup = LookupFailed
		s.Notice = &Notice{Kind: NoticeError, Text: MsgRateCardFailed}
		return s, nil, nil

	case RetryLookup:
		if s.Lookup != LookupFailed && s.Lookup != LookupNotFound {
			return s, nil, nil
		}
		key, complete := s.Draft.LookupKey()
		if !complete {
			return s, nil, nil
		}
		return s.issue(key)

	case ResetForm:
		generation := s.Generation + 1
		s = NewState()
		s.Generation = generation
		return s, nil, nil

	default:
		return s, nil, fmt.Errorf("%s: unknown action %T: %w", op, a, entity.ErrInvalidData)
	}
}

func (s State) awaitingLookup() bool {
	return s.Lookup == LookupEligible || s.Lookup == LookupFetching
}

func (s State) issue(key entity.RateCardQuery) (State, *LookupRequest, error) {
	s.Generation++
	s.Lookup = LookupEligible
	s.Notice = nil
	return s, &LookupRequest{Generation: s.Generation, Query: key}, nil
}

func setField(s State, a SetField) (State, *LookupRequest, error) {
	const op = "draft.SetField"

	if isRateSourced(a.Field) && s.PricingLocked() {
		return s, nil, fmt.Errorf("%s: %s: %w", op, a.Field, entity.ErrPricingLocked)
	}

	prevKey, _ := s.Draft.LookupKey()

	next := s.Draft
	if err := assign(&next, a.Field, a.Value); err != nil {
		return s, nil, fmt.Errorf("%s: %w", op, err)
	}
	if next.UserID != s.Draft.UserID {
		clearPricing(&next)
	}
	s.Draft = next

	key, complete := next.LookupKey()
	if key == prevKey {
		return s, nil, nil
	}

	if s.Lookup == LookupResolved {
		clearPricing(&s.Draft)
	}
	if complete {
		return s.issue(key)
	}

	// in-flight answers for the old key must not land
	s.Generation++
	s.Lookup = LookupIdle
	s.Notice = nil
	return s, nil, nil
}

func clearPricing(d *entity.Draft) {
	d.Charges = entity.Charges{}
	d.RateCardID = ""
}

func isRateSourced(field string) bool {
	switch field {
	case FieldBaseRate, FieldDocketCharge, FieldODACharge, FieldFOV, FieldFuelCharge, FieldGST:
		return true
	}
	return false
}

func assign(d *entity.Draft, field, value string) error {
	switch field {
	case FieldDate:
		day, err := entity.ParseDay(strings.TrimSpace(value))
		if err != nil {
			return &entity.ValidationError{Field: field, Message: "Date must be in YYYY-MM-DD format"}
		}
		d.Date = day
	case FieldUserID:
		if value != d.UserID {
			d.SenderName = ""
		}
		d.UserID = value
	case FieldSenderName:
		d.SenderName = value
	case FieldDestination:
		d.Destination = value
	case FieldDestinationCity:
		d.DestinationCity = value
	case FieldDestinationState:
		d.DestinationState = value
	case FieldDestinationPincode:
		d.DestinationPincode = strings.TrimSpace(value)
	case FieldProductName:
		d.ProductName = value
	case FieldPieces:
		d.Pieces = parseCount(value)
	case FieldWeight:
		d.Weight = parseAmount(value)
	case FieldInvoiceID:
		if value != d.InvoiceID {
			d.InvoiceNo = ""
		}
		d.InvoiceID = value
	case FieldInvoiceNo:
		d.InvoiceNo = value
	case FieldDeliveryPartner:
		if value != "" && !entity.IsDeliveryPartner(value) {
			return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown delivery partner %q", value)}
		}
		d.DeliveryPartner = value
	case FieldServiceType:
		service := entity.ServiceType(value)
		if value != "" && !service.Valid() {
			return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown service type %q", value)}
		}
		if service != d.ServiceType {
			d.Locator = ""
		}
		d.ServiceType = service
	case FieldMode:
		mode := entity.TransportMode(value)
		if value != "" && !mode.Valid() {
			return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown transport mode %q", value)}
		}
		d.Mode = mode
	case FieldRegion:
		return setLocator(d, entity.ServiceCargo, field, value)
	case FieldCourierZone:
		return setLocator(d, entity.ServiceCourier, field, value)
	case FieldZone:
		if !entity.IsZone(value) {
			return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown zone %q", value)}
		}
		d.Zone = value
	case FieldBaseRate:
		d.BaseRate = parseAmount(value)
	case FieldDocketCharge:
		d.DocketCharge = parseAmount(value)
	case FieldODACharge:
		d.ODACharge = parseAmount(value)
	case FieldFOV:
		d.FOV = parseAmount(value)
	case FieldFuelCharge:
		d.FuelChargePercent = parseAmount(value)
	case FieldGST:
		d.GSTPercent = parseAmount(value)
	case FieldDeclaredValue:
		d.DeclaredValue = parseAmount(value)
	case FieldBox1Dimensions:
		d.Box1Dimensions = value
	case FieldBox2Dimensions:
		d.Box2Dimensions = value
	case FieldBox3Dimensions:
		d.Box3Dimensions = value
	default:
		return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown field %q", field)}
	}
	return nil
}

// setLocator stores value as the locator when the draft's service type owns
// that kind of locator. Clearing a locator the service type does not own is a no-op.
func setLocator(d *entity.Draft, owner entity.ServiceType, field, value string) error {
	if value == "" {
		if d.ServiceType == owner {
			d.Locator = ""
		}
		return nil
	}
	if d.ServiceType != owner {
		return &entity.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s applies to %s service only", strings.ReplaceAll(field, "_", " "), owner),
		}
	}
	if !entity.ValidLocator(owner, value) {
		return &entity.ValidationError{Field: field, Message: fmt.Sprintf("Unknown %s %q", strings.ReplaceAll(field, "_", " "), value)}
	}
	d.Locator = value
	return nil
}

// parseAmount reads a numeric form value; anything unparsable counts as zero.
func parseAmount(value string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// parseCount reads a piece count; unparsable or zero input falls back to one.
func parseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n == 0 {
		return 1
	}
	return n
}
