// Package render turns roads and interaction state into the detail
// panel, legend and tooltip shown beside the map.
package render

import (
	"strconv"

	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// Group is one titled block of the detail panel.
type Group struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Panel is the detail panel for a selected road.
type Panel struct {
	Title  string  `json:"title"`
	RoadID string  `json:"road_id"`
	Groups []Group `json:"groups"`
}

const (
	noFootpath     = "No footpath"
	noStreetLights = "No street lights"
)

// DetailPanel builds the panel for road. Absent footpath and lighting
// render a fixed message.
func DetailPanel(road survey.Road) Panel {
	groups := []Group{
		{Title: "Road ID", Lines: []string{road.ID.String()}},
		{Title: "Road Specifications", Lines: []string{
			"Actual: " + metres(road.Width.Actual),
			"Effective: " + metres(road.Width.Effective),
			"Type: " + string(road.Width.Type),
		}},
		{Title: "Footpath", Lines: footpathLines(road.Footpath)},
		{Title: "Street Lights", Lines: streetLightLines(road.StreetLights)},
		{Title: "Drainage", Lines: drainageLines(road.Drainage)},
		{Title: "Street Vendors", Lines: vendorLines(road)},
		{Title: "Other Information", Lines: []string{
			"Waste Management: " + yesNo(road.WasteManagement),
			"Floating Population: " + yesNo(road.FloatingPopulation),
		}},
	}
	return Panel{Title: "Road Details", RoadID: road.ID.String(), Groups: groups}
}

func footpathLines(f survey.Footpath) []string {
	switch v := f.(type) {
	case survey.FootpathWidth:
		return []string{
			"Actual: " + metres(v.Actual),
			"Effective: " + metres(v.Effective),
		}
	default:
		return []string{noFootpath}
	}
}

func streetLightLines(s survey.StreetLights) []string {
	switch v := s.(type) {
	case survey.StreetLightCount:
		return []string{
			"Total: " + number(v.Actual),
			"Functional: " + number(v.Functional),
		}
	default:
		return []string{noStreetLights}
	}
}

func drainageLines(d survey.Drainage) []string {
	lines := []string{"Present: " + yesNo(d.Present)}
	if d.Present {
		lines = append(lines, "Type: "+d.Type)
	}
	return lines
}

func vendorLines(road survey.Road) []string {
	lines := []string{"Count: " + strconv.Itoa(road.StreetVendors)}
	if road.VendorActiveTime != "" {
		lines = append(lines, "Active Hours: "+road.VendorActiveTime)
	}
	return lines
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func metres(v float64) string {
	return number(v) + "m"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
