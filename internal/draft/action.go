package draft

import "github.com/Kabir14815/rr/internal/entity"

// Field names accepted by SetField. They match the draft's JSON keys.
const (
	FieldDate               = "date"
	FieldUserID             = "user_id"
	FieldSenderName         = "name"
	FieldDestination        = "destination"
	FieldDestinationCity    = "destination_city"
	FieldDestinationState   = "destination_state"
	FieldDestinationPincode = "destination_pincode"
	FieldProductName        = "product_name"
	FieldPieces             = "pieces"
	FieldWeight             = "weight"
	FieldInvoiceID          = "invoice_id"
	FieldInvoiceNo          = "invoice_no"
	FieldDeliveryPartner    = "delivery_partner"
	FieldServiceType        = "service_type"
	FieldMode               = "mode"
	FieldRegion             = "region"
	FieldCourierZone        = "courier_zone"
	FieldZone               = "zone"
	FieldBaseRate           = "base_rate"
	FieldDocketCharge       = "docket_charges"
	FieldODACharge          = "oda_charge"
	FieldFOV                = "fov"
	FieldFuelCharge         = "fuel_charge"
	FieldGST                = "gst"
	FieldDeclaredValue      = "value"
	FieldBox1Dimensions     = "box1_dimensions"
	FieldBox2Dimensions     = "box2_dimensions"
	FieldBox3Dimensions     = "box3_dimensions"
)

// Action is one input to Reduce.
type Action interface {
	isAction()
}

// SetField is an operator edit of a single draft field.
type SetField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// BeginLookup marks the lookup of Generation as in flight.
type BeginLookup struct {
	Generation uint64
}

// ApplyRateCard delivers a matched rate card for Generation.
type ApplyRateCard struct {
	Generation uint64
	Card       entity.RateCard
}

// ResetPricing delivers a "no match" answer for Generation.
type ResetPricing struct {
	Generation uint64
	Message    string
}

// FailLookup delivers a transport failure or timeout for Generation.
type FailLookup struct {
	Generation uint64
	Err        error
}

// RetryLookup re-issues the lookup for the current key after a failure.
type RetryLookup struct{}

// ResetForm replaces the draft with a fresh one.
type ResetForm struct{}

func (SetField) isAction()      {}
func (BeginLookup) isAction()   {}
func (ApplyRateCard) isAction() {}
func (ResetPricing) isAction()  {}
func (FailLookup) isAction()    {}
func (RetryLookup) isAction()   {}
func (ResetForm) isAction()     {}
