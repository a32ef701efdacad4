package entity

import "github.com/samber/lo"

type ServiceType string

const (
	ServiceCargo   ServiceType = "cargo"
	ServiceCourier ServiceType = "courier"
	ServiceOther   ServiceType = "other"
)

type TransportMode string

const (
	ModeSurface TransportMode = "surface"
	ModeAir     TransportMode = "air"
)

const DefaultZone = "LOCAL"

// Option is a value/label pair for a selectable reference value.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	// Zones are the legacy flat zone codes used by the grid and export filter.
	Zones = []string{"LOCAL", "ZONAL", "METRO", "ROI", "WEST", "NORTH", "SOUTH", "EAST"}

	DeliveryPartners = []string{
		"DTDC", "Delhivery", "BlueDart", "FedEx", "DHL",
		"Ecom Express", "Xpressbees", "Shadowfax", "Other",
	}

	ServiceTypes = []Option{
		{Value: string(ServiceCargo), Label: "Cargo"},
		{Value: string(ServiceCourier), Label: "Courier"},
		{Value: string(ServiceOther), Label: "Other (DTDC + Tariff)"},
	}

	TransportModes = []Option{
		{Value: string(ModeSurface), Label: "Surface"},
		{Value: string(ModeAir), Label: "Air"},
	}

	CargoRegions = []Option{
		{Value: "north", Label: "North"},
		{Value: "east", Label: "East"},
		{Value: "west", Label: "West"},
		{Value: "south", Label: "South"},
		{Value: "central", Label: "Central"},
		{Value: "kerala", Label: "Kerala"},
		{Value: "guwahati", Label: "Guwahati"},
		{Value: "north_east", Label: "North East"},
	}

	// CourierZones are the courier-specific zone tiers used for rate lookup.
	CourierZones = []Option{
		{Value: "zone_1", Label: "Zone 1 - Tricity"},
		{Value: "zone_2", Label: "Zone 2 - Delhi, Punjab, Haryana"},
		{Value: "zone_3", Label: "Zone 3 - UP, HP, Jammu, Rajasthan"},
		{Value: "zone_4", Label: "Zone 4 - Rest of India"},
		{Value: "zone_5", Label: "Zone 5 - Assam"},
		{Value: "zone_6", Label: "Zone 6 - North East"},
	}
)

func (s ServiceType) Valid() bool {
	return s == ServiceCargo || s == ServiceCourier || s == ServiceOther
}

func (m TransportMode) Valid() bool {
	return m == ModeSurface || m == ModeAir
}

func IsZone(zone string) bool {
	return lo.Contains(Zones, zone)
}

func IsDeliveryPartner(partner string) bool {
	return lo.Contains(DeliveryPartners, partner)
}

// ValidLocator reports whether value is an accepted locator for the service type.
// The "other" service type takes no locator at all.
func ValidLocator(service ServiceType, value string) bool {
	switch service {
	case ServiceCargo:
		return containsOption(CargoRegions, value)
	case ServiceCourier:
		return containsOption(CourierZones, value)
	default:
		return value == ""
	}
}

func containsOption(options []Option, value string) bool {
	return lo.ContainsBy(options, func(o Option) bool { return o.Value == value })
}
