// Package style maps survey roads to overlay paint parameters for the
// active attribute filter.
package style

import (
	"fmt"
	"strings"

	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// Filter is the attribute currently driving color-coding. At most one
// filter is active at a time.
type Filter int

const (
	None Filter = iota
	RoadType
	WasteManagement
)

func (f Filter) String() string {
	switch f {
	case RoadType:
		return "road_type"
	case WasteManagement:
		return "waste_management"
	default:
		return "none"
	}
}

// ParseFilter accepts the snake and camel spellings used by clients.
func ParseFilter(s string) (Filter, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return None, nil
	case "road_type", "roadType":
		return RoadType, nil
	case "waste_management", "wasteManagement":
		return WasteManagement, nil
	default:
		return None, fmt.Errorf("unknown filter %q", s)
	}
}

// MarshalText writes the snake form so filters read naturally in JSON.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (f *Filter) UnmarshalText(b []byte) error {
	parsed, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Paint holds the overlay parameters for one feature.
type Paint struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Line parameters shared by every filter.
const (
	LineWeight  = 4
	LineOpacity = 0.9
	FillOpacity = 0.2
)

// Palette names the colors used by the filters.
type Palette struct {
	Default string
	Success string
	Warning string
	Gold    string
	Green   string
}

// DefaultPalette is the survey map palette.
var DefaultPalette = Palette{
	Default: "#2563eb",
	Success: "#16a34a",
	Warning: "#dc2626",
	Gold:    "#eab308",
	Green:   "#16a34a",
}

// Resolver resolves paint for a road under a filter.
type Resolver struct {
	Palette Palette
}

// NewResolver returns a resolver over p, filling unset colors from
// DefaultPalette.
func NewResolver(p Palette) Resolver {
	d := DefaultPalette
	if p.Default == "" {
		p.Default = d.Default
	}
	if p.Success == "" {
		p.Success = d.Success
	}
	if p.Warning == "" {
		p.Warning = d.Warning
	}
	if p.Gold == "" {
		p.Gold = d.Gold
	}
	if p.Green == "" {
		p.Green = d.Green
	}
	return Resolver{Palette: p}
}

// Color returns the line color for road under f.
//
// The road type filter only tests for "flexible"; every other type,
// including values outside rigid/flexible, takes the green branch.
func (r Resolver) Color(road survey.Road, f Filter) string {
	switch f {
	case WasteManagement:
		if road.WasteManagement {
			return r.Palette.Success
		}
		return r.Palette.Warning
	case RoadType:
		if road.Width.Type == survey.RoadTypeFlexible {
			return r.Palette.Gold
		}
		return r.Palette.Green
	default:
		return r.Palette.Default
	}
}

// Resolve returns the full paint for road under f.
func (r Resolver) Resolve(road survey.Road, f Filter) Paint {
	c := r.Color(road, f)
	return Paint{
		Color:       c,
		FillColor:   c,
		Weight:      LineWeight,
		Opacity:     LineOpacity,
		FillOpacity: FillOpacity,
	}
}

// Style resolves paint with DefaultPalette.
func Style(road survey.Road, f Filter) Paint {
	return Resolver{Palette: DefaultPalette}.Resolve(road, f)
}
