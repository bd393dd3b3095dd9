package survey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// AbsentMarker is the literal the survey uses in place of a measurement
// object when the item does not exist on the road.
const AbsentMarker = "none"

var errMissing = errors.New("missing value")

// Footpath is either NoFootpath or FootpathWidth.
type Footpath interface {
	isFootpath()
}

// NoFootpath marks a road without a footpath.
type NoFootpath struct{}

// FootpathWidth is a measured footpath in metres.
type FootpathWidth struct {
	Actual    float64 `json:"actual"`
	Effective float64 `json:"effective"`
}

func (NoFootpath) isFootpath()    {}
func (FootpathWidth) isFootpath() {}

// StreetLights is either NoStreetLights or StreetLightCount.
type StreetLights interface {
	isStreetLights()
}

// NoStreetLights marks a road without street lighting.
type NoStreetLights struct{}

// StreetLightCount is the number of installed and working lights.
type StreetLightCount struct {
	Actual     float64 `json:"actual"`
	Functional float64 `json:"functional"`
}

func (NoStreetLights) isStreetLights()   {}
func (StreetLightCount) isStreetLights() {}

// isAbsent reports whether raw is exactly the absence sentinel. Any other
// string is rejected so that typos do not silently become measurements.
func isAbsent(raw json.RawMessage) (bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, errMissing
	}
	if raw[0] != '"' {
		return false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, err
	}
	if s != AbsentMarker {
		return false, fmt.Errorf("unexpected marker %q", s)
	}
	return true, nil
}

func decodeFootpath(raw json.RawMessage) (Footpath, error) {
	absent, err := isAbsent(raw)
	if err != nil {
		return nil, err
	}
	if absent {
		return NoFootpath{}, nil
	}
	var w FootpathWidth
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w, nil
}

func decodeStreetLights(raw json.RawMessage) (StreetLights, error) {
	absent, err := isAbsent(raw)
	if err != nil {
		return nil, err
	}
	if absent {
		return NoStreetLights{}, nil
	}
	var c StreetLightCount
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func footpathValue(f Footpath) any {
	switch v := f.(type) {
	case FootpathWidth:
		return map[string]any{"actual": v.Actual, "effective": v.Effective}
	default:
		return AbsentMarker
	}
}

func streetLightsValue(s StreetLights) any {
	switch v := s.(type) {
	case StreetLightCount:
		return map[string]any{"actual": v.Actual, "functional": v.Functional}
	default:
		return AbsentMarker
	}
}
