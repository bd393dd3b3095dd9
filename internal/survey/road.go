// Package survey holds the road infrastructure survey data model and its
// GeoJSON decoding.
package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// RoadType is the pavement type recorded in road_width.type.
type RoadType string

const (
	RoadTypeRigid    RoadType = "rigid"
	RoadTypeFlexible RoadType = "flexible"
)

// FeatureID identifies a road within a collection. The survey data uses
// both numeric and string ids, so it is carried as a string.
type FeatureID string

func (id FeatureID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string or number.
func (id *FeatureID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FeatureID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("feature id must be a string or number: %s", b)
	}
	*id = FeatureID(n.String())
	return nil
}

// RoadWidth holds the carriageway measurements in metres.
type RoadWidth struct {
	Actual    float64  `json:"actual"`
	Effective float64  `json:"effective"`
	Type      RoadType `json:"type"`
}

// Drainage records whether a drain runs along the road. Type is only
// meaningful when Present is true.
type Drainage struct {
	Present bool   `json:"present"`
	Type    string `json:"type,omitempty"`
}

// Road is one surveyed road segment.
type Road struct {
	ID                 FeatureID
	Width              RoadWidth
	Footpath           Footpath
	StreetLights       StreetLights
	Drainage           Drainage
	StreetVendors      int
	VendorActiveTime   string
	WasteManagement    bool
	FloatingPopulation bool

	Geometry orb.Geometry

	// Extra keeps properties outside the survey schema so they survive a
	// round trip through the store.
	Extra map[string]any
}

// Property keys used by the survey GeoJSON.
const (
	keyID                 = "id"
	keyRoadWidth          = "road_width"
	keyFootpathWidth      = "footpath_width"
	keyStreetLights       = "street_lights"
	keyDrainage           = "drainage"
	keyStreetVendor       = "street_vendor"
	keyVendorActiveTime   = "vendor_active_time"
	keyWasteManagement    = "waste_management"
	keyFloatingPopulation = "floating_population"
)

// Properties returns the road attributes in the survey document layout,
// with absent measurements written as the "none" sentinel.
func (r Road) Properties() map[string]any {
	props := make(map[string]any, len(r.Extra)+9)
	for k, v := range r.Extra {
		props[k] = v
	}
	props[keyID] = string(r.ID)
	props[keyRoadWidth] = map[string]any{
		"actual":    r.Width.Actual,
		"effective": r.Width.Effective,
		"type":      string(r.Width.Type),
	}
	props[keyFootpathWidth] = footpathValue(r.Footpath)
	props[keyStreetLights] = streetLightsValue(r.StreetLights)
	drainage := map[string]any{"present": r.Drainage.Present}
	if r.Drainage.Present && r.Drainage.Type != "" {
		drainage["type"] = r.Drainage.Type
	}
	props[keyDrainage] = drainage
	props[keyStreetVendor] = r.StreetVendors
	if r.VendorActiveTime != "" {
		props[keyVendorActiveTime] = r.VendorActiveTime
	}
	props[keyWasteManagement] = r.WasteManagement
	props[keyFloatingPopulation] = r.FloatingPopulation
	return props
}
