package http

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/*.tmpl
var webFS embed.FS

// handleIndex serves the map page. The page drives the session API; all
// state lives on the server.
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Map": s.cfg.Map,
	})
}
