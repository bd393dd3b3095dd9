// Package mapview describes what the map client draws: the base tile
// layer, the initial view and the styled road overlay.
package mapview

import (
	"github.com/paulmach/orb/geojson"

	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

const (
	DefaultTileURL         = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png"
	DefaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
	DefaultTileOpacity     = 0.9

	// Mirpur, Dhaka.
	DefaultCenterLat = 23.798398
	DefaultCenterLon = 90.363195
	DefaultZoom      = 15
)

// TileLayer is the base map registration.
type TileLayer struct {
	URL         string  `json:"url"`
	Attribution string  `json:"attribution"`
	Opacity     float64 `json:"opacity"`
}

// View is the initial map viewport.
type View struct {
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
}

// Config is everything the client needs before the overlay arrives.
type Config struct {
	Tiles TileLayer `json:"tiles"`
	View  View      `json:"view"`
}

// DefaultConfig returns the Mirpur survey map setup.
func DefaultConfig() Config {
	return Config{
		Tiles: TileLayer{
			URL:         DefaultTileURL,
			Attribution: DefaultTileAttribution,
			Opacity:     DefaultTileOpacity,
		},
		View: View{
			Center: [2]float64{DefaultCenterLat, DefaultCenterLon},
			Zoom:   DefaultZoom,
		},
	}
}

// StyleProperty is the feature property holding the resolved paint.
const StyleProperty = "style"

// StyledCollection returns coll as GeoJSON with each feature's paint for
// f stored under StyleProperty. A nil collection yields an empty
// FeatureCollection so the client draws the base map only.
func StyledCollection(coll *survey.Collection, f style.Filter, r style.Resolver) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, road := range coll.Roads() {
		feat := road.Feature()
		feat.Properties[StyleProperty] = r.Resolve(road, f)
		fc.Append(feat)
	}
	return fc
}
