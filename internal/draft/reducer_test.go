package draft_test

import (
	"errors"
	"testing"

	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func set(field, value string) draft.SetField {
	return draft.SetField{Field: field, Value: value}
}

// run applies actions in order, failing the test on any error, and collects
// the lookup requests they produced.
func run(t *testing.T, s draft.State, actions ...draft.Action) (draft.State, []draft.LookupRequest) {
	t.Helper()

	var reqs []draft.LookupRequest
	for _, a := range actions {
		next, req, err := draft.Reduce(s, a)
		require.NoError(t, err, "%#v", a)
		s = next
		if req != nil {
			reqs = append(reqs, *req)
		}
	}
	return s, reqs
}

func cargoKey() []draft.Action {
	return []draft.Action{
		set(draft.FieldUserID, "u-1"),
		set(draft.FieldDeliveryPartner, "DTDC"),
		set(draft.FieldServiceType, "cargo"),
		set(draft.FieldMode, "surface"),
		set(draft.FieldRegion, "north"),
	}
}

func resolvedCargo(t *testing.T) draft.State {
	t.Helper()
	s, reqs := run(t, draft.NewState(), cargoKey()...)
	require.Len(t, reqs, 1)
	s, _ = run(t, s,
		draft.BeginLookup{Generation: reqs[0].Generation},
		draft.ApplyRateCard{Generation: reqs[0].Generation, Card: entity.RateCard{
			ID:           "rc-1",
			BaseRate:     decimal.NewFromInt(100),
			DocketCharge: decimal.NewFromInt(20),
			ODI:          decimal.NewFromInt(10),
			FuelCharge:   decimal.NewFromInt(10),
			GST:          decimal.NewFromInt(18),
		}},
	)
	return s
}

func TestReduce_LookupEligibility(t *testing.T) {
	testCases := []struct {
		desc          string
		input         []draft.Action
		expectedState draft.LookupStatus
		expectedKeys  []entity.RateCardQuery
	}{
		{
			desc: "CargoWaitsForRegion",
			input: []draft.Action{
				set(draft.FieldUserID, "u-1"),
				set(draft.FieldDeliveryPartner, "DTDC"),
				set(draft.FieldServiceType, "cargo"),
				set(draft.FieldMode, "surface"),
			},
			expectedState: draft.LookupIdle,
		},
		{
			desc:          "CargoWithRegion",
			input:         cargoKey(),
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "north"},
			},
		},
		{
			desc: "CourierWithZone",
			input: []draft.Action{
				set(draft.FieldUserID, "u-1"),
				set(draft.FieldDeliveryPartner, "BlueDart"),
				set(draft.FieldServiceType, "courier"),
				set(draft.FieldMode, "air"),
				set(draft.FieldCourierZone, "zone_2"),
			},
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "BlueDart", ServiceType: entity.ServiceCourier, Mode: entity.ModeAir, Locator: "zone_2"},
			},
		},
		{
			desc: "OtherNeedsNoLocator",
			input: []draft.Action{
				set(draft.FieldUserID, "u-1"),
				set(draft.FieldDeliveryPartner, "DTDC"),
				set(draft.FieldServiceType, "other"),
				set(draft.FieldMode, "surface"),
			},
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceOther, Mode: entity.ModeSurface},
			},
		},
		{
			desc:          "MissingUser",
			input:         cargoKey()[1:],
			expectedState: draft.LookupIdle,
		},
		{
			desc:          "SameValueIsNotAChange",
			input:         append(cargoKey(), set(draft.FieldRegion, "north"), set(draft.FieldMode, "surface")),
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "north"},
			},
		},
		{
			desc:          "NonKeyFieldsFireNothing",
			input:         append(cargoKey(), set(draft.FieldDestination, "Pune"), set(draft.FieldDeclaredValue, "5000")),
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "north"},
			},
		},
		{
			desc:          "EachDistinctKeyFiresOnce",
			input:         append(cargoKey(), set(draft.FieldRegion, "east"), set(draft.FieldRegion, "north")),
			expectedState: draft.LookupEligible,
			expectedKeys: []entity.RateCardQuery{
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "north"},
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "east"},
				{UserID: "u-1", DeliveryPartner: "DTDC", ServiceType: entity.ServiceCargo, Mode: entity.ModeSurface, Locator: "north"},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			s, reqs := run(t, draft.NewState(), tc.input...)

			require.Equal(t, tc.expectedState, s.Lookup)
			require.Len(t, reqs, len(tc.expectedKeys))
			for i, want := range tc.expectedKeys {
				require.Equal(t, want, reqs[i].Query)
			}
			if len(reqs) > 0 {
				require.Equal(t, s.Generation, reqs[len(reqs)-1].Generation)
			}
		})
	}
}

func TestReduce_ServiceTypeChangeClearsLocator(t *testing.T) {
	s, _ := run(t, draft.NewState(), cargoKey()...)
	require.Equal(t, "north", s.Draft.Region())

	s, reqs := run(t, s, set(draft.FieldServiceType, "courier"))
	require.Empty(t, reqs)
	require.Equal(t, draft.LookupIdle, s.Lookup)
	require.Empty(t, s.Draft.Locator)
	require.Empty(t, s.Draft.Region())
	require.Empty(t, s.Draft.CourierZone())

	_, _, err := draft.Reduce(s, set(draft.FieldRegion, "north"))
	require.ErrorIs(t, err, entity.ErrInvalidData)

	s, reqs = run(t, s, set(draft.FieldCourierZone, "zone_1"))
	require.Len(t, reqs, 1)
	require.Equal(t, "zone_1", s.Draft.CourierZone())
	require.Empty(t, s.Draft.Region())
}

func TestReduce_ResolvedLocksPricing(t *testing.T) {
	s := resolvedCargo(t)

	require.Equal(t, draft.LookupResolved, s.Lookup)
	require.True(t, s.PricingLocked())
	require.Equal(t, "rc-1", s.Draft.RateCardID)
	require.True(t, decimal.NewFromInt(10).Equal(s.Draft.ODACharge))
	require.True(t, s.Draft.FOV.IsZero(), "missing fov must read as zero")
	require.Equal(t, &draft.Notice{Kind: draft.NoticeSuccess, Text: draft.MsgRateCardApplied}, s.Notice)
	require.Equal(t, "168.74", s.Total().Display())

	for _, field := range []string{
		draft.FieldBaseRate, draft.FieldDocketCharge, draft.FieldODACharge,
		draft.FieldFOV, draft.FieldFuelCharge, draft.FieldGST,
	} {
		next, req, err := draft.Reduce(s, set(field, "1"))
		require.ErrorIs(t, err, entity.ErrPricingLocked, field)
		require.Nil(t, req)
		require.Equal(t, s, next)
	}

	s, _ = run(t, s, set(draft.FieldDeclaredValue, "2500"))
	require.True(t, decimal.NewFromInt(2500).Equal(s.Draft.DeclaredValue))
	require.Equal(t, draft.LookupResolved, s.Lookup)

	s, reqs := run(t, s, set(draft.FieldMode, "air"))
	require.Len(t, reqs, 1)
	require.False(t, s.PricingLocked())
	require.Equal(t, entity.Charges{}, s.Draft.Charges)
	require.Empty(t, s.Draft.RateCardID)
	require.Nil(t, s.Notice)
}

func TestReduce_NotFoundZeroesPricing(t *testing.T) {
	testCases := []struct {
		desc     string
		message  string
		expected string
	}{
		{desc: "GenericFallback", message: "", expected: draft.MsgRateCardNotFound},
		{desc: "ServerMessage", message: "No rate card for DTDC north", expected: "No rate card for DTDC north"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			s, _ := run(t, draft.NewState(),
				set(draft.FieldBaseRate, "55"),
				set(draft.FieldGST, "18"),
			)
			s, reqs := run(t, s, cargoKey()...)
			require.Len(t, reqs, 1)

			s, _ = run(t, s, draft.ResetPricing{Generation: reqs[0].Generation, Message: tc.message})

			require.Equal(t, draft.LookupNotFound, s.Lookup)
			require.False(t, s.PricingLocked())
			require.Equal(t, entity.Charges{}, s.Draft.Charges)
			require.Equal(t, &draft.Notice{Kind: draft.NoticeError, Text: tc.expected}, s.Notice)

			s, _ = run(t, s, set(draft.FieldBaseRate, "40"))
			require.True(t, decimal.NewFromInt(40).Equal(s.Draft.BaseRate))
		})
	}
}

func TestReduce_StaleResponsesIgnored(t *testing.T) {
	s, first := run(t, draft.NewState(), cargoKey()...)
	s, second := run(t, s, set(draft.FieldRegion, "east"))
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Greater(t, second[0].Generation, first[0].Generation)

	card := entity.RateCard{ID: "old", BaseRate: decimal.NewFromInt(999)}
	for _, stale := range []draft.Action{
		draft.ApplyRateCard{Generation: first[0].Generation, Card: card},
		draft.ResetPricing{Generation: first[0].Generation},
		draft.FailLookup{Generation: first[0].Generation, Err: errors.New("boom")},
	} {
		next, _ := run(t, s, stale)
		require.Equal(t, s, next, "%T", stale)
	}

	s, _ = run(t, s, draft.ApplyRateCard{Generation: second[0].Generation, Card: entity.RateCard{ID: "new"}})
	require.Equal(t, draft.LookupResolved, s.Lookup)
	require.Equal(t, "new", s.Draft.RateCardID)
}

func TestReduce_IncompleteKeyDropsInFlightLookup(t *testing.T) {
	s, reqs := run(t, draft.NewState(), cargoKey()...)
	s, more := run(t, s, set(draft.FieldMode, ""))
	require.Empty(t, more)
	require.Equal(t, draft.LookupIdle, s.Lookup)

	s, _ = run(t, s, draft.ApplyRateCard{Generation: reqs[0].Generation, Card: entity.RateCard{ID: "rc-1"}})
	require.Equal(t, draft.LookupIdle, s.Lookup)
	require.Empty(t, s.Draft.RateCardID)
}

func TestReduce_FailedLookupRetry(t *testing.T) {
	s, reqs := run(t, draft.NewState(), cargoKey()...)

	s, again := run(t, s, draft.RetryLookup{})
	require.Empty(t, again, "retry only applies after a failure")

	s, _ = run(t, s,
		draft.BeginLookup{Generation: reqs[0].Generation},
		draft.FailLookup{Generation: reqs[0].Generation, Err: errors.New("dial tcp: refused")},
	)
	require.Equal(t, draft.LookupFailed, s.Lookup)
	require.Equal(t, &draft.Notice{Kind: draft.NoticeError, Text: draft.MsgRateCardFailed}, s.Notice)

	s, _ = run(t, s, set(draft.FieldBaseRate, "12"))
	require.True(t, decimal.NewFromInt(12).Equal(s.Draft.BaseRate))

	s, again = run(t, s, draft.RetryLookup{})
	require.Len(t, again, 1)
	require.Equal(t, reqs[0].Query, again[0].Query)
	require.Equal(t, reqs[0].Generation+1, again[0].Generation)
	require.Equal(t, draft.LookupEligible, s.Lookup)
	require.Nil(t, s.Notice)
}

func TestReduce_UserChange(t *testing.T) {
	s, _ := run(t, draft.NewState(),
		set(draft.FieldUserID, "u-1"),
		set(draft.FieldSenderName, "Asha (Acme)"),
		set(draft.FieldBaseRate, "70"),
		set(draft.FieldInvoiceID, "inv-1"),
		set(draft.FieldInvoiceNo, "INV-001"),
	)

	s, _ = run(t, s, set(draft.FieldUserID, "u-2"))
	require.Empty(t, s.Draft.SenderName)
	require.True(t, s.Draft.BaseRate.IsZero())
	require.Equal(t, "INV-001", s.Draft.InvoiceNo)

	s, _ = run(t, s, set(draft.FieldInvoiceID, "inv-2"))
	require.Empty(t, s.Draft.InvoiceNo)
}

func TestReduce_FieldParsing(t *testing.T) {
	s, _ := run(t, draft.NewState(),
		set(draft.FieldPieces, "abc"),
		set(draft.FieldWeight, "not a number"),
		set(draft.FieldFOV, "12.5"),
		set(draft.FieldDate, "2024-03-05"),
	)
	require.Equal(t, 1, s.Draft.Pieces)
	require.True(t, s.Draft.Weight.IsZero())
	require.True(t, decimal.RequireFromString("12.5").Equal(s.Draft.FOV))
	require.Equal(t, "2024-03-05", s.Draft.Date.String())

	s, _ = run(t, s, set(draft.FieldPieces, "7"))
	require.Equal(t, 7, s.Draft.Pieces)
}

func TestReduce_RejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		desc  string
		input draft.SetField
	}{
		{desc: "UnknownField", input: set("colour", "red")},
		{desc: "UnknownPartner", input: set(draft.FieldDeliveryPartner, "Pigeon Post")},
		{desc: "UnknownServiceType", input: set(draft.FieldServiceType, "teleport")},
		{desc: "UnknownMode", input: set(draft.FieldMode, "sea")},
		{desc: "UnknownZone", input: set(draft.FieldZone, "MOON")},
		{desc: "RegionWithoutCargo", input: set(draft.FieldRegion, "north")},
		{desc: "CourierZoneWithoutCourier", input: set(draft.FieldCourierZone, "zone_1")},
		{desc: "BadDate", input: set(draft.FieldDate, "05/03/2024")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			s := draft.NewState()
			next, req, err := draft.Reduce(s, tc.input)

			require.ErrorIs(t, err, entity.ErrInvalidData)
			require.Nil(t, req)
			require.Equal(t, s, next)
		})
	}
}

func TestReduce_ResetForm(t *testing.T) {
	s := resolvedCargo(t)
	generation := s.Generation

	s, _ = run(t, s, draft.ResetForm{})
	require.Equal(t, draft.LookupIdle, s.Lookup)
	require.Equal(t, entity.DefaultZone, s.Draft.Zone)
	require.Equal(t, 1, s.Draft.Pieces)
	require.Empty(t, s.Draft.UserID)
	require.Equal(t, generation+1, s.Generation)
}

// Random edit sequences never leave both locator views set and only fire
// lookups for complete keys that differ from the previous key.
func TestReduce_RandomEdits(t *testing.T) {
	f := gofakeit.New(7)

	edits := []func() draft.SetField{
		func() draft.SetField { return set(draft.FieldUserID, f.RandomString([]string{"", "u-1", "u-2"})) },
		func() draft.SetField {
			return set(draft.FieldDeliveryPartner, f.RandomString([]string{"", "DTDC", "FedEx"}))
		},
		func() draft.SetField {
			return set(draft.FieldServiceType, f.RandomString([]string{"", "cargo", "courier", "other"}))
		},
		func() draft.SetField { return set(draft.FieldMode, f.RandomString([]string{"", "surface", "air"})) },
		func() draft.SetField { return set(draft.FieldRegion, f.RandomString([]string{"", "north", "kerala"})) },
		func() draft.SetField { return set(draft.FieldCourierZone, f.RandomString([]string{"", "zone_1", "zone_6"})) },
		func() draft.SetField { return set(draft.FieldDestination, f.City()) },
	}

	for i := 0; i < 50; i++ {
		s := draft.NewState()
		for j := 0; j < 40; j++ {
			before, _ := s.Draft.LookupKey()

			next, req, err := draft.Reduce(s, edits[f.IntRange(0, len(edits)-1)]())
			if err != nil {
				require.ErrorIs(t, err, entity.ErrInvalidData)
				continue
			}
			s = next

			require.False(t, s.Draft.Region() != "" && s.Draft.CourierZone() != "")

			after, complete := s.Draft.LookupKey()
			if req != nil {
				require.True(t, complete)
				require.NotEqual(t, before, after)
				require.Equal(t, after, req.Query)
			} else if complete && before != after {
				t.Fatalf("complete key %+v changed without a lookup", after)
			}
		}
	}
}
