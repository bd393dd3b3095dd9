package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var fragments = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RenderPanel renders the detail panel fragment for road.
func RenderPanel(road survey.Road) (template.HTML, error) {
	return execute("panel", DetailPanel(road))
}

// RenderLegend renders the legend fragment for f. Nothing is rendered
// without an active filter.
func RenderLegend(f style.Filter, p style.Palette) (template.HTML, error) {
	entries := Legend(f, p)
	if len(entries) == 0 {
		return "", nil
	}
	return execute("legend", struct {
		Title   string
		Entries []LegendEntry
	}{LegendTitle(f), entries})
}

// RenderTooltip renders the hover tooltip at its offset position, or
// nothing when no road is hovered.
func RenderTooltip(s state.State) (template.HTML, error) {
	tip, ok := s.Tooltip()
	if !ok {
		return "", nil
	}
	return execute("tooltip", struct {
		Left, Top float64
		Text      string
	}{tip.Left, tip.Top, TooltipText(s)})
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Fragments is the rendered side content for one interaction state.
type Fragments struct {
	Panel   template.HTML `json:"panel_html"`
	Legend  template.HTML `json:"legend_html"`
	Tooltip template.HTML `json:"tooltip_html"`
}

// RenderAll renders every fragment for s. The selected road is looked up
// in coll; a selection that is not in coll renders no panel.
func RenderAll(s state.State, coll *survey.Collection, p style.Palette) (Fragments, error) {
	var (
		out Fragments
		err error
	)
	if s.Selected() {
		if road, ok := coll.Lookup(s.SelectedID); ok {
			if out.Panel, err = RenderPanel(road); err != nil {
				return Fragments{}, err
			}
		}
	}
	if out.Legend, err = RenderLegend(s.Filter, p); err != nil {
		return Fragments{}, err
	}
	if out.Tooltip, err = RenderTooltip(s); err != nil {
		return Fragments{}, err
	}
	return out, nil
}
