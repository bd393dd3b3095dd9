package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

func measuredRoad() survey.Road {
	return survey.Road{
		ID:                 "12",
		Width:              survey.RoadWidth{Actual: 18.3, Effective: 12, Type: survey.RoadTypeRigid},
		Footpath:           survey.FootpathWidth{Actual: 2.4, Effective: 1.1},
		StreetLights:       survey.StreetLightCount{Actual: 14, Functional: 9},
		Drainage:           survey.Drainage{Present: true, Type: "covered"},
		StreetVendors:      6,
		VendorActiveTime:   "16:00-22:00",
		WasteManagement:    true,
		FloatingPopulation: false,
	}
}

func bareRoad() survey.Road {
	return survey.Road{
		ID:           "R-2",
		Width:        survey.RoadWidth{Actual: 9.1, Effective: 6, Type: survey.RoadTypeFlexible},
		Footpath:     survey.NoFootpath{},
		StreetLights: survey.NoStreetLights{},
		Drainage:     survey.Drainage{Present: false, Type: "open"},
	}
}

func group(t *testing.T, p Panel, title string) []string {
	t.Helper()
	for _, g := range p.Groups {
		if g.Title == title {
			return g.Lines
		}
	}
	t.Fatalf("panel has no group %q", title)
	return nil
}

func TestDetailPanelMeasured(t *testing.T) {
	p := DetailPanel(measuredRoad())
	if p.Title != "Road Details" || p.RoadID != "12" {
		t.Fatalf("unexpected header: %+v", p)
	}
	tests := map[string][]string{
		"Road ID":             {"12"},
		"Road Specifications": {"Actual: 18.3m", "Effective: 12m", "Type: rigid"},
		"Footpath":            {"Actual: 2.4m", "Effective: 1.1m"},
		"Street Lights":       {"Total: 14", "Functional: 9"},
		"Drainage":            {"Present: Yes", "Type: covered"},
		"Street Vendors":      {"Count: 6", "Active Hours: 16:00-22:00"},
		"Other Information":   {"Waste Management: Yes", "Floating Population: No"},
	}
	for title, want := range tests {
		if got := group(t, p, title); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: expected %q, got %q", title, want, got)
		}
	}
}

func TestDetailPanelAbsentMeasurements(t *testing.T) {
	p := DetailPanel(bareRoad())
	if got := group(t, p, "Footpath"); !reflect.DeepEqual(got, []string{"No footpath"}) {
		t.Errorf("unexpected footpath lines: %q", got)
	}
	if got := group(t, p, "Street Lights"); !reflect.DeepEqual(got, []string{"No street lights"}) {
		t.Errorf("unexpected street light lines: %q", got)
	}
	if got := group(t, p, "Drainage"); !reflect.DeepEqual(got, []string{"Present: No"}) {
		t.Errorf("drainage type should be hidden when not present: %q", got)
	}
	if got := group(t, p, "Street Vendors"); !reflect.DeepEqual(got, []string{"Count: 0"}) {
		t.Errorf("active hours should be hidden when unset: %q", got)
	}
}

func TestDetailPanelFractionalLights(t *testing.T) {
	road := bareRoad()
	road.StreetLights = survey.StreetLightCount{Actual: 2.5, Functional: 2}
	want := []string{"Total: 2.5", "Functional: 2"}
	if got := group(t, DetailPanel(road), "Street Lights"); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDetailPanelNilMeasurementsRenderAbsent(t *testing.T) {
	p := DetailPanel(survey.Road{ID: "x"})
	if got := group(t, p, "Footpath"); got[0] != "No footpath" {
		t.Errorf("unexpected footpath lines: %q", got)
	}
}

func TestLegend(t *testing.T) {
	pal := style.DefaultPalette
	if got := Legend(style.None, pal); got != nil {
		t.Errorf("expected no legend without filter, got %v", got)
	}
	wm := Legend(style.WasteManagement, pal)
	if len(wm) != 2 || wm[0].Color != pal.Success || wm[1].Color != pal.Warning {
		t.Errorf("unexpected waste management legend: %v", wm)
	}
	rt := Legend(style.RoadType, pal)
	if len(rt) != 2 || rt[0].Label != "Flexible" || rt[0].Color != pal.Gold || rt[1].Color != pal.Green {
		t.Errorf("unexpected road type legend: %v", rt)
	}
}

func TestLegendMatchesResolver(t *testing.T) {
	pal := style.DefaultPalette
	r := style.Resolver{Palette: pal}
	flexible := Legend(style.RoadType, pal)[0].Color
	if got := r.Color(bareRoad(), style.RoadType); got != flexible {
		t.Errorf("flexible road color %s does not match legend %s", got, flexible)
	}
	managed := Legend(style.WasteManagement, pal)[0].Color
	if got := r.Color(measuredRoad(), style.WasteManagement); got != managed {
		t.Errorf("managed road color %s does not match legend %s", got, managed)
	}
}

func TestRenderPanelHTML(t *testing.T) {
	html, err := RenderPanel(bareRoad())
	if err != nil {
		t.Fatalf("render panel: %v", err)
	}
	out := string(html)
	for _, want := range []string{"Road Details", "<p>No footpath</p>", "<p>No street lights</p>", `data-road-id="R-2"`} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEscapesValues(t *testing.T) {
	road := bareRoad()
	road.ID = "<script>"
	html, err := RenderPanel(road)
	if err != nil {
		t.Fatalf("render panel: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected road id to be escaped:\n%s", html)
	}
}

func TestRenderLegendAndTooltip(t *testing.T) {
	empty, err := RenderLegend(style.None, style.DefaultPalette)
	if err != nil || empty != "" {
		t.Fatalf("expected empty legend, got %q (%v)", empty, err)
	}
	legend, err := RenderLegend(style.RoadType, style.DefaultPalette)
	if err != nil {
		t.Fatalf("render legend: %v", err)
	}
	if !strings.Contains(string(legend), "Road Type") || !strings.Contains(string(legend), style.DefaultPalette.Gold) {
		t.Errorf("unexpected legend:\n%s", legend)
	}

	none, err := RenderTooltip(state.State{})
	if err != nil || none != "" {
		t.Fatalf("expected no tooltip, got %q (%v)", none, err)
	}
	s := state.Reduce(state.State{}, state.PointerEnter{ID: "12", At: state.Point{X: 100, Y: 50}})
	tip, err := RenderTooltip(s)
	if err != nil {
		t.Fatalf("render tooltip: %v", err)
	}
	out := string(tip)
	if !strings.Contains(out, "Road ID: 12") || !strings.Contains(out, "left: 110px") || !strings.Contains(out, "top: 60px") {
		t.Errorf("unexpected tooltip:\n%s", out)
	}
}

func TestRenderAll(t *testing.T) {
	coll, err := survey.NewCollection([]survey.Road{measuredRoad(), bareRoad()})
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	s := state.ReduceAll(state.State{},
		state.Click{ID: "R-2"},
		state.ToggleFilter{Filter: style.WasteManagement},
	)
	frags, err := RenderAll(s, coll, style.DefaultPalette)
	if err != nil {
		t.Fatalf("render all: %v", err)
	}
	if !strings.Contains(string(frags.Panel), "R-2") {
		t.Errorf("expected panel for R-2, got %q", frags.Panel)
	}
	if frags.Legend == "" || frags.Tooltip != "" {
		t.Errorf("unexpected fragments: %+v", frags)
	}

	stale := state.State{SelectedID: "gone"}
	frags, err = RenderAll(stale, coll, style.DefaultPalette)
	if err != nil || frags.Panel != "" {
		t.Errorf("expected no panel for unknown selection, got %q (%v)", frags.Panel, err)
	}
}
