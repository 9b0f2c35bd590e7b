package policy

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/automoto/kiclash/bot"
)

const (
	RouteDecide = "/v1/decide"
	RouteHealth = "/healthz"

	maxRequestBody = 1 << 16 // 64 KB
)

var ErrNoAPIKey = errors.New("policy: api key is required")

// Suggester chooses an action for a snapshot.
type Suggester interface {
	Suggest(bot.Snapshot) bot.Decision
}

// Config holds the service dependencies.
type Config struct {
	Addr      string
	APIKey    string
	Suggester Suggester
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	if c.Suggester == nil {
		return errors.New("policy: suggester is required")
	}
	return nil
}

// Server serves decisions over HTTP.
type Server struct {
	cfg    Config
	router *gin.Engine
}

func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{cfg: cfg, router: gin.New()}
	s.router.Use(gin.Logger(), gin.Recovery())

	s.router.GET(RouteHealth, s.health)
	s.router.POST(RouteDecide, bearer(cfg.APIKey), s.decide)
	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[policy] listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("[policy] shutting down")
	return srv.Shutdown(shutdownCtx)
}

// bearer rejects requests without the expected Authorization header.
func bearer(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) decide(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)

	var snap bot.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot"})
		return
	}

	d := s.cfg.Suggester.Suggest(snap)
	c.JSON(http.StatusOK, gin.H{"action": d.Action.String(), "reason": d.Reason})
}
