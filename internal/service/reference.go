package service

import (
	"github.com/Kabir14815/rr/internal/entity"

	"github.com/samber/lo"
)

// Reference lists every selectable value of the entry form.
type Reference struct {
	DeliveryPartners []entity.Option `json:"delivery_partners"`
	ServiceTypes     []entity.Option `json:"service_types"`
	TransportModes   []entity.Option `json:"transport_modes"`
	CargoRegions     []entity.Option `json:"cargo_regions"`
	CourierZones     []entity.Option `json:"courier_zones"`
	Zones            []entity.Option `json:"zones"`
	ExportModes      []entity.Option `json:"export_modes"`
}

func plainOptions(values []string) []entity.Option {
	return lo.Map(values, func(v string, _ int) entity.Option {
		return entity.Option{Value: v, Label: v}
	})
}

func NewReference() Reference {
	return Reference{
		DeliveryPartners: plainOptions(entity.DeliveryPartners),
		ServiceTypes:     entity.ServiceTypes,
		TransportModes:   entity.TransportModes,
		CargoRegions:     entity.CargoRegions,
		CourierZones:     entity.CourierZones,
		Zones:            plainOptions(entity.Zones),
		ExportModes: []entity.Option{
			{Value: string(entity.ExportAll), Label: "All consignments"},
			{Value: string(entity.ExportSelected), Label: "Selected rows"},
			{Value: string(entity.ExportDateRange), Label: "Date range"},
			{Value: string(entity.ExportZone), Label: "Zone"},
		},
	}
}
