package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type ExportMode string

const (
	ExportAll       ExportMode = "all"
	ExportSelected  ExportMode = "selected"
	ExportDateRange ExportMode = "dateRange"
	ExportZone      ExportMode = "zone"
)

const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportRequest selects the consignments to export. Only the parameters of Mode are used.
type ExportRequest struct {
	Mode      ExportMode `json:"mode"`
	IDs       []string   `json:"ids,omitempty"`
	StartDate Day        `json:"start_date"`
	EndDate   Day        `json:"end_date"`
	Zone      string     `json:"zone,omitempty"`
}

// Normalize trims the selected ids and the zone; blank ids are dropped.
func (r ExportRequest) Normalize() ExportRequest {
	if len(r.IDs) > 0 {
		r.IDs = lo.Compact(lo.Map(r.IDs, func(id string, _ int) string {
			return strings.TrimSpace(id)
		}))
	}
	r.Zone = strings.TrimSpace(r.Zone)
	return r
}

// Validate rejects requests the export view must not issue. A selection made
// only of blank ids counts as empty.
func (r ExportRequest) Validate() error {
	r = r.Normalize()

	switch r.Mode {
	case ExportAll:
		return nil
	case ExportSelected:
		if len(r.IDs) == 0 {
			return &ValidationError{Field: "ids", Message: "Select at least one consignment to export"}
		}
		return nil
	case ExportDateRange:
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return &ValidationError{Field: "date_range", Message: "Both start and end dates are required"}
		}
		if r.EndDate.Before(r.StartDate.Time) {
			return &ValidationError{Field: "date_range", Message: "End date must not be before start date"}
		}
		return nil
	case ExportZone:
		if !IsZone(r.Zone) {
			return &ValidationError{Field: "zone", Message: fmt.Sprintf("Unknown zone %q", r.Zone)}
		}
		return nil
	default:
		return &ValidationError{Field: "mode", Message: fmt.Sprintf("Unknown export mode %q", r.Mode)}
	}
}

// ExportFileName names the downloaded spreadsheet after the given day.
func ExportFileName(t time.Time) string {
	return "consignments_" + t.Format(DayLayout) + ".xlsx"
}

type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}
