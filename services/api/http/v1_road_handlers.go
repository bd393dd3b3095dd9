package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/mirpur-road-survey/internal/mapview"
	"github.com/02loveslollipop/mirpur-road-survey/internal/render"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
)

// handleV1MapConfig returns the tile layer and initial view
// GET /api/v1/map/config
func (s *Server) handleV1MapConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": s.cfg.Map,
	})
}

// handleV1ListRoads returns the road overlay styled for a filter
// GET /api/v1/roads?filter=none|road_type|waste_management
func (s *Server) handleV1ListRoads(c *gin.Context) {
	filter, err := style.ParseFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll, _ := s.collection()
	c.JSON(http.StatusOK, s.styledRoads(coll, filter))
}

func (s *Server) styledRoads(coll *survey.Collection, filter style.Filter) gin.H {
	return gin.H{
		"data": mapview.StyledCollection(coll, filter, s.resolver),
		"meta": gin.H{
			"filter":        filter,
			"count":         coll.Len(),
			"survey_loaded": coll != nil,
			"legend":        render.Legend(filter, s.resolver.Palette),
		},
	}
}

// handleV1GetRoad returns the survey fields and detail panel for one road
// GET /api/v1/roads/:id
func (s *Server) handleV1GetRoad(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "road id is required"})
		return
	}

	coll, _ := s.collection()
	road, ok := coll.Lookup(survey.FeatureID(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "road not found"})
		return
	}

	panelHTML, err := render.RenderPanel(road)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         road.ID,
			"properties": road.Properties(),
			"panel":      render.DetailPanel(road),
			"panel_html": panelHTML,
		},
	})
}

// handleV1Legend returns the legend swatches for a filter
// GET /api/v1/legend?filter=road_type
func (s *Server) handleV1Legend(c *gin.Context) {
	filter, err := style.ParseFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries := render.Legend(filter, s.resolver.Palette)
	c.JSON(http.StatusOK, gin.H{
		"data": entries,
		"meta": gin.H{
			"filter": filter,
			"title":  render.LegendTitle(filter),
			"count":  len(entries),
		},
	})
}
