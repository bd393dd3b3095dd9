// Package interaction translates rendering engine events into state
// events through a table keyed by feature id.
package interaction

import (
	"errors"
	"fmt"

	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

var (
	// ErrUnknownFeature is returned for a feature event naming an id that
	// is not in the table.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrUnknownEvent is returned for an event type the table does not
	// handle.
	ErrUnknownEvent = errors.New("unknown event type")
)

// Engine event types, named after the map engine's layer events.
const (
	EventMouseOver          = "mouseover"
	EventMouseMove          = "mousemove"
	EventMouseOut           = "mouseout"
	EventClick              = "click"
	EventClose              = "close"
	EventToggleFilter       = "toggle_filter"
	EventToggleFiltersPanel = "toggle_filters_panel"
	EventReset              = "reset"
)

// EngineEvent is an event as reported by the map client.
type EngineEvent struct {
	Type      string  `json:"type"`
	FeatureID string  `json:"feature_id,omitempty"`
	ClientX   float64 `json:"client_x,omitempty"`
	ClientY   float64 `json:"client_y,omitempty"`
	Filter    string  `json:"filter,omitempty"`
}

// Known reports whether t is one of the engine event types.
func Known(t string) bool {
	switch t {
	case EventMouseOver, EventMouseMove, EventMouseOut, EventClick, EventClose,
		EventToggleFilter, EventToggleFiltersPanel, EventReset:
		return true
	}
	return false
}

// ClearsState reports whether events of type t only clear interaction state.
func ClearsState(t string) bool {
	switch t {
	case EventMouseOut, EventClose, EventReset:
		return true
	}
	return false
}

type handler func(EngineEvent) state.Event

// Table holds one handler set per feature plus the map-level handlers.
type Table struct {
	features map[survey.FeatureID]map[string]handler
	global   map[string]func(EngineEvent) (state.Event, error)
}

// NewTable builds the dispatch table for coll. A nil collection yields a
// table with only map-level handlers.
func NewTable(coll *survey.Collection) *Table {
	t := &Table{
		features: make(map[survey.FeatureID]map[string]handler, coll.Len()),
		global: map[string]func(EngineEvent) (state.Event, error){
			EventMouseMove: func(e EngineEvent) (state.Event, error) {
				return state.PointerMove{At: point(e)}, nil
			},
			EventMouseOut: func(EngineEvent) (state.Event, error) {
				return state.PointerLeave{}, nil
			},
			EventClose: func(EngineEvent) (state.Event, error) {
				return state.ClosePanel{}, nil
			},
			EventToggleFilter: func(e EngineEvent) (state.Event, error) {
				f, err := style.ParseFilter(e.Filter)
				if err != nil {
					return nil, err
				}
				return state.ToggleFilter{Filter: f}, nil
			},
			EventToggleFiltersPanel: func(EngineEvent) (state.Event, error) {
				return state.ToggleFiltersPanel{}, nil
			},
			EventReset: func(EngineEvent) (state.Event, error) {
				return state.Reset{}, nil
			},
		},
	}
	for _, id := range coll.IDs() {
		id := id
		t.features[id] = map[string]handler{
			EventClick: func(EngineEvent) state.Event {
				return state.Click{ID: id}
			},
			EventMouseOver: func(e EngineEvent) state.Event {
				return state.PointerEnter{ID: id, At: point(e)}
			},
			EventMouseOut: func(EngineEvent) state.Event {
				return state.PointerLeave{}
			},
		}
	}
	return t
}

func point(e EngineEvent) state.Point {
	return state.Point{X: e.ClientX, Y: e.ClientY}
}

// Len returns the number of features with registered handlers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.features)
}

// Translate maps an engine event to a state event. Events carrying a
// feature id are routed through that feature's handlers.
func (t *Table) Translate(e EngineEvent) (state.Event, error) {
	if t == nil {
		t = NewTable(nil)
	}
	if e.FeatureID != "" {
		handlers, ok := t.features[survey.FeatureID(e.FeatureID)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, e.FeatureID)
		}
		if h, ok := handlers[e.Type]; ok {
			return h(e), nil
		}
	}
	if h, ok := t.global[e.Type]; ok {
		return h(e)
	}
	if e.Type == EventClick || e.Type == EventMouseOver {
		return nil, fmt.Errorf("%w: %s requires feature_id", ErrUnknownFeature, e.Type)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
}

// Dispatch translates e and reduces it into s. On error s is returned
// unchanged.
func (t *Table) Dispatch(s state.State, e EngineEvent) (state.State, error) {
	ev, err := t.Translate(e)
	if err != nil {
		return s, err
	}
	return state.Reduce(s, ev), nil
}
