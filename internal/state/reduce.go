package state

import (
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// Event is an input to Reduce.
type Event interface {
	event()
}

// PointerEnter is the pointer moving onto a road.
type PointerEnter struct {
	ID survey.FeatureID
	At Point
}

// PointerMove is the pointer moving anywhere over the map.
type PointerMove struct {
	At Point
}

// PointerLeave is the pointer leaving a road.
type PointerLeave struct{}

// Click is a click on a road.
type Click struct {
	ID survey.FeatureID
}

// ClosePanel dismisses the detail panel.
type ClosePanel struct{}

// ToggleFilter flips one filter checkbox.
type ToggleFilter struct {
	Filter style.Filter
}

// ToggleFiltersPanel shows or hides the filter controls.
type ToggleFiltersPanel struct{}

// Reset returns to the initial state.
type Reset struct{}

func (PointerEnter) event()       {}
func (PointerMove) event()        {}
func (PointerLeave) event()       {}
func (Click) event()              {}
func (ClosePanel) event()         {}
func (ToggleFilter) event()       {}
func (ToggleFiltersPanel) event() {}
func (Reset) event()              {}

// Reduce applies e to s and returns the new state. Hover and selection
// are independent of each other.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case PointerEnter:
		if ev.ID == "" {
			return s
		}
		s.HoveredID = ev.ID
		s.Pointer = ev.At
	case PointerMove:
		if s.Hovered() {
			s.Pointer = ev.At
		}
	case PointerLeave:
		s.HoveredID = ""
	case Click:
		if ev.ID == "" {
			return s
		}
		s.SelectedID = ev.ID
	case ClosePanel:
		s.SelectedID = ""
	case ToggleFilter:
		s.Filter = toggle(s.Filter, ev.Filter)
	case ToggleFiltersPanel:
		s.FiltersPanelVisible = !s.FiltersPanelVisible
		if !s.FiltersPanelVisible {
			s.Filter = style.None
		}
	case Reset:
		return State{}
	}
	return s
}

func toggle(active, f style.Filter) style.Filter {
	if f == style.None {
		return active
	}
	if active == f {
		return style.None
	}
	return f
}

// ReduceAll folds events over s in order.
func ReduceAll(s State, events ...Event) State {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}
