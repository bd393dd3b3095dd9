package survey

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

var (
	// ErrDuplicateID is returned when two features share an id.
	ErrDuplicateID = errors.New("duplicate feature id")
	// ErrMissingID is returned when a feature carries no id at all.
	ErrMissingID = errors.New("feature id is required")
)

type rawProperties struct {
	ID                 *FeatureID      `json:"id"`
	RoadWidth          *RoadWidth      `json:"road_width"`
	FootpathWidth      json.RawMessage `json:"footpath_width"`
	StreetLights       json.RawMessage `json:"street_lights"`
	Drainage           *Drainage       `json:"drainage"`
	StreetVendor       *int            `json:"street_vendor"`
	VendorActiveTime   *string         `json:"vendor_active_time"`
	WasteManagement    bool            `json:"waste_management"`
	FloatingPopulation bool            `json:"floating_population"`
}

var knownKeys = map[string]struct{}{
	keyID: {}, keyRoadWidth: {}, keyFootpathWidth: {}, keyStreetLights: {},
	keyDrainage: {}, keyStreetVendor: {}, keyVendorActiveTime: {},
	keyWasteManagement: {}, keyFloatingPopulation: {},
}

// Decode parses a survey GeoJSON FeatureCollection. The document is
// accepted or rejected as a whole.
func Decode(data []byte) (*Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	roads := make([]Road, 0, len(fc.Features))
	for i, f := range fc.Features {
		road, err := DecodeFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		roads = append(roads, road)
	}
	return NewCollection(roads)
}

// DecodeFeature converts one GeoJSON feature into a Road.
func DecodeFeature(f *geojson.Feature) (Road, error) {
	if f == nil {
		return Road{}, errors.New("null feature")
	}
	raw, err := json.Marshal(f.Properties)
	if err != nil {
		return Road{}, fmt.Errorf("encode properties: %w", err)
	}
	var p rawProperties
	if err := json.Unmarshal(raw, &p); err != nil {
		return Road{}, fmt.Errorf("decode properties: %w", err)
	}

	road := Road{
		Geometry:           f.Geometry,
		WasteManagement:    p.WasteManagement,
		FloatingPopulation: p.FloatingPopulation,
	}

	switch {
	case p.ID != nil && *p.ID != "":
		road.ID = *p.ID
	default:
		id, ok := featureMemberID(f.ID)
		if !ok {
			return Road{}, ErrMissingID
		}
		road.ID = id
	}

	if p.RoadWidth == nil {
		return Road{}, fmt.Errorf("road %s: road_width: %w", road.ID, errMissing)
	}
	road.Width = *p.RoadWidth

	if road.Footpath, err = decodeFootpath(p.FootpathWidth); err != nil {
		return Road{}, fmt.Errorf("road %s: footpath_width: %w", road.ID, err)
	}
	if road.StreetLights, err = decodeStreetLights(p.StreetLights); err != nil {
		return Road{}, fmt.Errorf("road %s: street_lights: %w", road.ID, err)
	}

	if p.Drainage == nil {
		return Road{}, fmt.Errorf("road %s: drainage: %w", road.ID, errMissing)
	}
	road.Drainage = *p.Drainage
	if !road.Drainage.Present {
		road.Drainage.Type = ""
	}

	if p.StreetVendor != nil {
		if *p.StreetVendor < 0 {
			return Road{}, fmt.Errorf("road %s: street_vendor must not be negative", road.ID)
		}
		road.StreetVendors = *p.StreetVendor
	}
	if p.VendorActiveTime != nil {
		road.VendorActiveTime = *p.VendorActiveTime
	}

	for k, v := range f.Properties {
		if _, ok := knownKeys[k]; ok {
			continue
		}
		if road.Extra == nil {
			road.Extra = make(map[string]any)
		}
		road.Extra[k] = v
	}
	return road, nil
}

func featureMemberID(v any) (FeatureID, bool) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return FeatureID(id), true
	case float64:
		return FeatureID(strconv.FormatFloat(id, 'f', -1, 64)), true
	case json.Number:
		return FeatureID(id.String()), true
	default:
		return "", false
	}
}
