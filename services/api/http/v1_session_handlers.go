package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/mirpur-road-survey/internal/interaction"
	"github.com/02loveslollipop/mirpur-road-survey/internal/metrics"
	"github.com/02loveslollipop/mirpur-road-survey/internal/render"
	"github.com/02loveslollipop/mirpur-road-survey/internal/session"
	"github.com/02loveslollipop/mirpur-road-survey/internal/state"
)

// sessionView is what the client needs to redraw its side content.
type sessionView struct {
	ID           string               `json:"id"`
	State        state.State          `json:"state"`
	Tooltip      *state.Tooltip       `json:"tooltip"`
	Legend       []render.LegendEntry `json:"legend"`
	Selected     *render.Panel        `json:"selected"`
	SurveyLoaded bool                 `json:"survey_loaded"`
	render.Fragments
}

func (s *Server) sessionView(id string, st state.State) (sessionView, error) {
	coll, _ := s.collection()

	frags, err := render.RenderAll(st, coll, s.resolver.Palette)
	if err != nil {
		return sessionView{}, err
	}

	view := sessionView{
		ID:           id,
		State:        st,
		Legend:       render.Legend(st.Filter, s.resolver.Palette),
		SurveyLoaded: coll != nil,
		Fragments:    frags,
	}
	if tip, ok := st.Tooltip(); ok {
		view.Tooltip = &tip
	}
	if road, ok := coll.Lookup(st.SelectedID); ok {
		panel := render.DetailPanel(road)
		view.Selected = &panel
	}
	return view, nil
}

func (s *Server) respondSession(c *gin.Context, status int, id string, st state.State) {
	view, err := s.sessionView(id, st)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"data": view})
}

// handleV1CreateSession starts a viewer session in the initial state
// POST /api/v1/sessions
func (s *Server) handleV1CreateSession(c *gin.Context) {
	id, st := s.sessions.Create()
	s.respondSession(c, http.StatusCreated, id, st)
}

// handleV1GetSession returns the current session view
// GET /api/v1/sessions/:id
func (s *Server) handleV1GetSession(c *gin.Context) {
	id := c.Param("id")
	st, err := s.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.respondSession(c, http.StatusOK, id, st)
}

// handleV1DeleteSession drops a session
// DELETE /api/v1/sessions/:id
func (s *Server) handleV1DeleteSession(c *gin.Context) {
	if !s.sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": session.ErrNotFound.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleV1SessionRoads returns the overlay styled for the session's filter
// GET /api/v1/sessions/:id/roads
func (s *Server) handleV1SessionRoads(c *gin.Context) {
	st, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	coll, _ := s.collection()
	c.JSON(http.StatusOK, s.styledRoads(coll, st.Filter))
}

// handleV1SessionEvent applies one map event to a session
// POST /api/v1/sessions/:id/events
// Body: {"type":"click","feature_id":"12"} or {"type":"toggle_filter","filter":"road_type"}
func (s *Server) handleV1SessionEvent(c *gin.Context) {
	id := c.Param("id")

	var ev interaction.EngineEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event body"})
		return
	}
	if ev.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event type is required"})
		return
	}
	// Clearing events bypass the budget so a pointer flood cannot leave a
	// road hovered after the pointer has gone.
	if !interaction.ClearsState(ev.Type) && !s.limiter.Allow(c.ClientIP()) {
		metrics.RateLimitedTotal.Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	_, table := s.collection()
	st, err := s.sessions.Apply(id, func(cur state.State) (state.State, error) {
		return table.Dispatch(cur, ev)
	})
	label := ev.Type
	if !interaction.Known(label) {
		label = "other"
	}
	metrics.RecordSessionEvent(label, err)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound), errors.Is(err, interaction.ErrUnknownFeature):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	s.respondSession(c, http.StatusOK, id, st)
}
