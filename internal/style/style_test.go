package style

import (
	"testing"

	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

func road(id string, wm bool, typ survey.RoadType) survey.Road {
	return survey.Road{
		ID:              survey.FeatureID(id),
		Width:           survey.RoadWidth{Actual: 10, Effective: 8, Type: typ},
		Footpath:        survey.NoFootpath{},
		StreetLights:    survey.NoStreetLights{},
		WasteManagement: wm,
	}
}

func TestWasteManagementFilter(t *testing.T) {
	p := DefaultPalette
	for _, wm := range []bool{true, false} {
		for _, typ := range []survey.RoadType{survey.RoadTypeRigid, survey.RoadTypeFlexible} {
			got := Style(road("1", wm, typ), WasteManagement)
			want := p.Warning
			if wm {
				want = p.Success
			}
			if got.Color != want || got.FillColor != want {
				t.Errorf("wm=%v type=%s: expected %s, got %+v", wm, typ, want, got)
			}
		}
	}
}

func TestRoadTypeFilter(t *testing.T) {
	tests := []struct {
		typ  survey.RoadType
		want string
	}{
		{survey.RoadTypeFlexible, DefaultPalette.Gold},
		{survey.RoadTypeRigid, DefaultPalette.Green},
		{"cobbled", DefaultPalette.Green},
		{"", DefaultPalette.Green},
	}
	for _, tt := range tests {
		for _, wm := range []bool{true, false} {
			if got := Style(road("1", wm, tt.typ), RoadType).Color; got != tt.want {
				t.Errorf("type %q: expected %s, got %s", tt.typ, tt.want, got)
			}
		}
	}
}

func TestNoFilterUsesDefault(t *testing.T) {
	for _, r := range []survey.Road{
		road("a", true, survey.RoadTypeFlexible),
		road("b", false, survey.RoadTypeRigid),
	} {
		if got := Style(r, None).Color; got != DefaultPalette.Default {
			t.Errorf("road %s: expected default color, got %s", r.ID, got)
		}
	}
}

func TestLineParametersAreConstant(t *testing.T) {
	r := road("1", true, survey.RoadTypeFlexible)
	for _, f := range []Filter{None, RoadType, WasteManagement} {
		p := Style(r, f)
		if p.Weight != 4 || p.Opacity != 0.9 || p.FillOpacity != 0.2 {
			t.Errorf("filter %s: unexpected line parameters %+v", f, p)
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		"":                 None,
		"none":             None,
		"road_type":        RoadType,
		"roadType":         RoadType,
		"waste_management": WasteManagement,
		"wasteManagement":  WasteManagement,
	}
	for in, want := range tests {
		got, err := ParseFilter(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Errorf("parse %q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseFilter("lighting"); err == nil {
		t.Errorf("expected error for unknown filter")
	}
}

func TestNewResolverFillsPalette(t *testing.T) {
	r := NewResolver(Palette{Warning: "#ff8800"})
	if r.Palette.Warning != "#ff8800" {
		t.Errorf("expected custom warning color, got %s", r.Palette.Warning)
	}
	if r.Palette.Default != DefaultPalette.Default {
		t.Errorf("expected default color to be filled, got %s", r.Palette.Default)
	}
	if got := r.Color(road("1", false, survey.RoadTypeRigid), WasteManagement); got != "#ff8800" {
		t.Errorf("expected custom warning color to be used, got %s", got)
	}
}
