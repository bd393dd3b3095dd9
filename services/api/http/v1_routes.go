package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/map, /api/v1/roads, /api/v1/legend, /api/v1/sessions
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	if s.cfg.BearerToken != "" {
		v1.Use(bearerAuthMiddleware(s.cfg.BearerToken))
	}

	// Map endpoints - base layer and initial view
	mapGroup := v1.Group("/map")
	{
		mapGroup.GET("/config", s.handleV1MapConfig)
	}

	// Road endpoints - styled overlay and survey details
	roads := v1.Group("/roads")
	{
		roads.GET("", s.handleV1ListRoads)
		roads.GET("/:id", s.handleV1GetRoad)
	}

	v1.GET("/legend", s.handleV1Legend)

	// Session endpoints - per-viewer interaction state
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", s.handleV1CreateSession)
		sessions.GET("/:id", s.handleV1GetSession)
		sessions.DELETE("/:id", s.handleV1DeleteSession)
		sessions.GET("/:id/roads", s.handleV1SessionRoads)
		sessions.POST("/:id/events", s.handleV1SessionEvent)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
