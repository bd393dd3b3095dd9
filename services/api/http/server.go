package http

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/02loveslollipop/mirpur-road-survey/internal/interaction"
	"github.com/02loveslollipop/mirpur-road-survey/internal/session"
	"github.com/02loveslollipop/mirpur-road-survey/internal/style"
	"github.com/02loveslollipop/mirpur-road-survey/internal/survey"
	"github.com/02loveslollipop/mirpur-road-survey/services/api/config"
)

// SurveyProvider exposes the loaded survey collection, if any.
type SurveyProvider interface {
	Collection() (*survey.Collection, bool)
}

// Server bundles router and dependencies for the map API.
type Server struct {
	cfg      config.Config
	survey   SurveyProvider
	sessions *session.Store
	resolver style.Resolver
	logger   *slog.Logger
	limiter  *RateLimiter
	engine   *gin.Engine

	tableMu   sync.Mutex
	tableColl *survey.Collection
	table     *interaction.Table
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, provider SurveyProvider, sessions *session.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(accessLogMiddleware(logger))
	engine.Use(metricsMiddleware())
	engine.Use(corsMiddleware())

	server := &Server{
		cfg:      cfg,
		survey:   provider,
		sessions: sessions,
		resolver: style.NewResolver(style.DefaultPalette),
		logger:   logger,
		limiter:  NewRateLimiter(rate.Limit(cfg.EventRateLimit), cfg.EventRateBurst),
		engine:   engine,
	}
	engine.SetHTMLTemplate(template.Must(template.ParseFS(webFS, "web/*.tmpl")))
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close releases background resources when Run is not used.
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		_, loaded := s.survey.Collection()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "survey_loaded": loaded})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine.GET("/", s.handleIndex)
	s.engine.Static("/static", s.cfg.StaticDir)
	if s.cfg.SurveySource == config.SourceFile {
		s.engine.StaticFile("/"+filepath.Base(s.cfg.SurveyPath), s.cfg.SurveyPath)
	}

	s.registerV1Routes()
}

// collection returns the survey collection and the dispatch table built
// for it. Both are nil until the loader has finished successfully.
func (s *Server) collection() (*survey.Collection, *interaction.Table) {
	coll, ok := s.survey.Collection()
	if !ok {
		return nil, nil
	}

	s.tableMu.Lock()
	defer s.tableMu.Unlock()
	if s.tableColl != coll {
		s.table = interaction.NewTable(coll)
		s.tableColl = coll
	}
	return coll, s.table
}

func bearerAuthMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if token != expected {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
