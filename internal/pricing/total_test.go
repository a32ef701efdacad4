package pricing_test

import (
	"testing"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/pricing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateTotal(t *testing.T) {
	testCases := []struct {
		desc     string
		input    entity.Charges
		expected pricing.Breakdown
	}{
		{
			desc:  "AllZero",
			input: entity.Charges{},
			expected: pricing.Breakdown{
				BaseAmount: decimal.Zero,
				FuelAmount: decimal.Zero,
				FOV:        decimal.Zero,
				Subtotal:   decimal.Zero,
				GSTAmount:  decimal.Zero,
				Total:      decimal.Zero,
			},
		},
		{
			desc: "FullRateCard",
			input: entity.Charges{
				BaseRate:          dec("100"),
				DocketCharge:      dec("20"),
				ODACharge:         dec("10"),
				FOV:               dec("15"),
				FuelChargePercent: dec("10"),
				GSTPercent:        dec("18"),
			},
			expected: pricing.Breakdown{
				BaseAmount: dec("130"),
				FuelAmount: dec("13"),
				FOV:        dec("15"),
				Subtotal:   dec("158"),
				GSTAmount:  dec("28.44"),
				Total:      dec("186.44"),
			},
		},
		{
			desc: "FOVNotSubjectToFuel",
			input: entity.Charges{
				FOV:               dec("50"),
				FuelChargePercent: dec("25"),
			},
			expected: pricing.Breakdown{
				BaseAmount: decimal.Zero,
				FuelAmount: decimal.Zero,
				FOV:        dec("50"),
				Subtotal:   dec("50"),
				GSTAmount:  decimal.Zero,
				Total:      dec("50"),
			},
		},
		{
			desc: "FractionalRates",
			input: entity.Charges{
				BaseRate:          dec("99.99"),
				DocketCharge:      dec("0.01"),
				FuelChargePercent: dec("12.5"),
				GSTPercent:        dec("5"),
			},
			expected: pricing.Breakdown{
				BaseAmount: dec("100"),
				FuelAmount: dec("12.5"),
				FOV:        decimal.Zero,
				Subtotal:   dec("112.5"),
				GSTAmount:  dec("5.625"),
				Total:      dec("118.125"),
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			got := pricing.CalculateTotal(tc.input)

			require.True(t, tc.expected.BaseAmount.Equal(got.BaseAmount), "base: %s", got.BaseAmount)
			require.True(t, tc.expected.FuelAmount.Equal(got.FuelAmount), "fuel: %s", got.FuelAmount)
			require.True(t, tc.expected.FOV.Equal(got.FOV), "fov: %s", got.FOV)
			require.True(t, tc.expected.Subtotal.Equal(got.Subtotal), "subtotal: %s", got.Subtotal)
			require.True(t, tc.expected.GSTAmount.Equal(got.GSTAmount), "gst: %s", got.GSTAmount)
			require.True(t, tc.expected.Total.Equal(got.Total), "total: %s", got.Total)
		})
	}
}

func TestBreakdown_Display(t *testing.T) {
	got := pricing.CalculateTotal(entity.Charges{
		BaseRate:   dec("10"),
		GSTPercent: dec("18"),
	})
	require.Equal(t, "11.80", got.Display())
	require.Equal(t, "0.00", pricing.CalculateTotal(entity.Charges{}).Display())
}

func randomCharges(f *gofakeit.Faker) entity.Charges {
	amount := func() decimal.Decimal {
		return decimal.NewFromFloat(f.Float64Range(0, 5000)).Round(2)
	}
	percent := func() decimal.Decimal {
		return decimal.NewFromFloat(f.Float64Range(0, 40)).Round(1)
	}
	return entity.Charges{
		BaseRate:          amount(),
		DocketCharge:      amount(),
		ODACharge:         amount(),
		FOV:               amount(),
		FuelChargePercent: percent(),
		GSTPercent:        percent(),
	}
}

func TestCalculateTotal_MonotonicInEachInput(t *testing.T) {
	f := gofakeit.New(42)

	bumps := []struct {
		name  string
		apply func(c *entity.Charges, d decimal.Decimal)
	}{
		{"base_rate", func(c *entity.Charges, d decimal.Decimal) { c.BaseRate = c.BaseRate.Add(d) }},
		{"docket", func(c *entity.Charges, d decimal.Decimal) { c.DocketCharge = c.DocketCharge.Add(d) }},
		{"oda", func(c *entity.Charges, d decimal.Decimal) { c.ODACharge = c.ODACharge.Add(d) }},
		{"fov", func(c *entity.Charges, d decimal.Decimal) { c.FOV = c.FOV.Add(d) }},
		{"fuel", func(c *entity.Charges, d decimal.Decimal) { c.FuelChargePercent = c.FuelChargePercent.Add(d) }},
		{"gst", func(c *entity.Charges, d decimal.Decimal) { c.GSTPercent = c.GSTPercent.Add(d) }},
	}

	for i := 0; i < 200; i++ {
		charges := randomCharges(f)
		before := pricing.CalculateTotal(charges).Total

		for _, b := range bumps {
			bumped := charges
			b.apply(&bumped, decimal.NewFromFloat(f.Float64Range(0, 100)).Round(2))
			after := pricing.CalculateTotal(bumped).Total
			require.True(t, after.GreaterThanOrEqual(before),
				"%s increase lowered total: %s -> %s", b.name, before, after)
		}
	}
}

func TestCalculateTotal_DeclaredValueExcluded(t *testing.T) {
	d := entity.NewDraft()
	d.BaseRate = dec("100")
	d.DeclaredValue = dec("99999")

	require.True(t, dec("100").Equal(pricing.CalculateTotal(d.Charges).Total))
}
