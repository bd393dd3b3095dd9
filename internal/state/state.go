// Package state is the viewer interaction state: hover, selection and the
// active filter, advanced by a pure reducer.
package state

import (
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// Point is a pointer position in screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TooltipOffset is added to the pointer position when placing the tooltip.
var TooltipOffset = Point{X: 10, Y: 10}

// State is the interaction state of one viewer. The zero value is the
// initial state: nothing hovered or selected, no filter, panel hidden.
type State struct {
	SelectedID          survey.FeatureID `json:"selected_id,omitempty"`
	HoveredID           survey.FeatureID `json:"hovered_id,omitempty"`
	Pointer             Point            `json:"pointer"`
	Filter              style.Filter     `json:"filter"`
	FiltersPanelVisible bool             `json:"filters_panel_visible"`
}

// Selected reports whether a road is selected.
func (s State) Selected() bool { return s.SelectedID != "" }

// Hovered reports whether a road is under the pointer.
func (s State) Hovered() bool { return s.HoveredID != "" }

// Tooltip is the hover label placement.
type Tooltip struct {
	ID   survey.FeatureID `json:"id"`
	Left float64          `json:"left"`
	Top  float64          `json:"top"`
}

// Tooltip returns the tooltip placement while a road is hovered.
func (s State) Tooltip() (Tooltip, bool) {
	if !s.Hovered() {
		return Tooltip{}, false
	}
	return Tooltip{
		ID:   s.HoveredID,
		Left: s.Pointer.X + TooltipOffset.X,
		Top:  s.Pointer.Y + TooltipOffset.Y,
	}, true
}
