package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/crontab"
	"github.com/sirupsen/logrus"

	"github.com/dmeade/eximg/internal/resolver"
)

// Server exposes the resolver service over a localhost JSON API for
// deployments where the consuming application is not the eximg process
// itself.
type Server struct {
	svc *resolver.Service
	ttl time.Duration
	log *logrus.Logger
}

// New creates a server around svc. ttl governs the periodic sweep of
// expired cache entries.
func New(svc *resolver.Service, ttl time.Duration, log *logrus.Logger) *Server {
	return &Server{svc: svc, ttl: ttl, log: log}
}

// Router builds the gin engine. Split out from Run so tests can drive it
// with httptest without binding a port.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "strategy": s.svc.Strategy()})
	})

	v1 := router.Group("/v1")
	v1.GET("/images", s.handleImages)
	v1.POST("/refresh/:identifier", s.handleRefresh)
	v1.DELETE("/cache", s.handleClearCache)
	v1.GET("/cache/stats", s.handleStats)

	return router
}

func (s *Server) handleImages(c *gin.Context) {
	ids := splitComma(c.Query("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	locations := s.svc.ResolveAll(c.Request.Context(), ids)
	results := make(map[string]any, len(locations))
	for id, location := range locations {
		if location == "" {
			results[id] = nil
		} else {
			results[id] = location
		}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) handleRefresh(c *gin.Context) {
	id := c.Param("identifier")
	location := s.svc.Refresh(c.Request.Context(), id)
	body := gin.H{"identifier": id}
	if location == "" {
		body["location"] = nil
	} else {
		body["location"] = location
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleClearCache(c *gin.Context) {
	s.svc.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.svc.Stats(s.ttl))
}

// Run serves addr until ctx is canceled, sweeping expired cache entries
// hourly in the background.
func (s *Server) Run(ctx context.Context, addr string) error {
	ctab := crontab.New()
	defer ctab.Shutdown()
	if err := ctab.AddJob("0 * * * *", func() {
		if removed := s.svc.Sweep(s.ttl); removed > 0 {
			s.log.WithField("removed", removed).Info("swept expired cache entries")
		}
	}); err != nil {
		return fmt.Errorf("scheduling cache sweep: %w", err)
	}

	srv := &http.Server{Addr: addr, Handler: s.Router()}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.WithField("addr", addr).Info("eximg server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
