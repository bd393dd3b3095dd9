package survey

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// Collection is the loaded, read-only set of surveyed roads in document
// order.
type Collection struct {
	roads []Road
	index map[FeatureID]int
}

// NewCollection indexes roads by id. Ids must be unique.
func NewCollection(roads []Road) (*Collection, error) {
	c := &Collection{
		roads: make([]Road, len(roads)),
		index: make(map[FeatureID]int, len(roads)),
	}
	copy(c.roads, roads)
	for i, r := range c.roads {
		if r.ID == "" {
			return nil, fmt.Errorf("road %d: %w", i, ErrMissingID)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		c.index[r.ID] = i
	}
	return c, nil
}

// Len returns the number of roads. A nil collection is empty.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.roads)
}

// Roads returns a copy of the roads in document order.
func (c *Collection) Roads() []Road {
	if c == nil {
		return nil
	}
	out := make([]Road, len(c.roads))
	copy(out, c.roads)
	return out
}

// Lookup finds a road by id.
func (c *Collection) Lookup(id FeatureID) (Road, bool) {
	if c == nil {
		return Road{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Road{}, false
	}
	return c.roads[i], true
}

// IDs lists road ids in document order.
func (c *Collection) IDs() []FeatureID {
	if c == nil {
		return nil
	}
	ids := make([]FeatureID, 0, len(c.roads))
	for _, r := range c.roads {
		ids = append(ids, r.ID)
	}
	return ids
}

// Feature converts a road back to a GeoJSON feature.
func (r Road) Feature() *geojson.Feature {
	f := geojson.NewFeature(r.Geometry)
	f.ID = string(r.ID)
	f.Properties = geojson.Properties(r.Properties())
	return f
}

// FeatureCollection re-encodes the collection in the survey layout.
func (c *Collection) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if c == nil {
		return fc
	}
	for _, r := range c.roads {
		fc.Append(r.Feature())
	}
	return fc
}
