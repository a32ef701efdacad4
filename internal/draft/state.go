// Package draft holds the consignment entry form: a pure reducer over the draft
// and its rate card lookup state, and a Controller that runs lookups.
package draft

import (
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/pricing"
)

type LookupStatus string

const (
	LookupIdle     LookupStatus = "idle"
	LookupEligible LookupStatus = "eligible"
	LookupFetching LookupStatus = "fetching"
	LookupResolved LookupStatus = "resolved"
	LookupNotFound LookupStatus = "not_found"
	LookupFailed   LookupStatus = "fetch_failed"
)

const (
	MsgRateCardApplied  = "Rate card fetched successfully!"
	MsgRateCardNotFound = "No matching rate card found. Please contact admin."
	MsgRateCardFailed   = "Failed to fetch rate card. Please try again."
	MsgRateCardPending  = "Please wait for rate card to be fetched or select valid rate card criteria"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the message an operator sees after a lookup settles.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// State is everything the entry form renders. Generation identifies the
// latest issued lookup; responses carrying an older one are dropped.
type State struct {
	Draft      entity.Draft `json:"draft"`
	Lookup     LookupStatus `json:"lookup"`
	Generation uint64       `json:"generation"`
	Notice     *Notice      `json:"notice,omitempty"`
}

func NewState() State {
	return State{
		Draft:  entity.NewDraft(),
		Lookup: LookupIdle,
	}
}

// PricingLocked reports whether the rate-sourced pricing fields are read-only.
func (s State) PricingLocked() bool {
	return s.Lookup == LookupResolved
}

// Current reports whether generation belongs to the latest lookup.
func (s State) Current(generation uint64) bool {
	return generation == s.Generation
}

func (s State) Total() pricing.Breakdown {
	return pricing.CalculateTotal(s.Draft.Charges)
}

// LookupRequest asks the caller to run a rate card lookup for Query and feed
// the outcome back tagged with Generation.
type LookupRequest struct {
	Generation uint64
	Query      entity.RateCardQuery
}
