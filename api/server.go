package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/logging"
)

// Stats is the read side of the score store.
type Stats interface {
	Get() int
	GetScoreHistory() []manager.RoundRecord
	Summary() manager.HistorySummary
}

// Server is a read-only HTTP feed of the running game.
type Server struct {
	stats  Stats
	router *gin.Engine

	mu   sync.RWMutex
	last *game.Snapshot
}

func NewServer(stats Stats) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{stats: stats, router: gin.New()}
	s.router.Use(gin.Recovery())

	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	s.router.GET("/snapshot", s.snapshot)
	s.router.GET("/best", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"bestScore": s.stats.Get()})
	})
	s.router.GET("/history", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"scoreHistory": s.stats.GetScoreHistory(),
			"summary":      s.stats.Summary(),
		})
	})
	return s
}

// Observe is an EventSnapshot handler.
func (s *Server) Observe(e game.Event) {
	snap := e.Snapshot
	s.mu.Lock()
	s.last = &snap
	s.mu.Unlock()
}

func (s *Server) snapshot(c *gin.Context) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()
	if last == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, last)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}
	errc := make(chan error, 1)
	go func() {
		logging.Log.Noticef("HTTP feed listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http feed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http feed shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http feed: %w", err)
	}
	return nil
}
