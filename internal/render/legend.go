package render

import (
	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
)

// LegendEntry is one swatch of the legend.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Legend returns the swatches matching the resolver's colors for f, or
// nil when no filter is active.
func Legend(f style.Filter, p style.Palette) []LegendEntry {
	switch f {
	case style.WasteManagement:
		return []LegendEntry{
			{Label: "Waste management", Color: p.Success},
			{Label: "No waste management", Color: p.Warning},
		}
	case style.RoadType:
		return []LegendEntry{
			{Label: "Flexible", Color: p.Gold},
			{Label: "Rigid", Color: p.Green},
		}
	default:
		return nil
	}
}

// LegendTitle names the legend for f.
func LegendTitle(f style.Filter) string {
	switch f {
	case style.WasteManagement:
		return "Waste Management"
	case style.RoadType:
		return "Road Type"
	default:
		return ""
	}
}

// TooltipText is the hover label, empty when nothing is hovered.
func TooltipText(s state.State) string {
	if !s.Hovered() {
		return ""
	}
	return "Road ID: " + s.HoveredID.String()
}
