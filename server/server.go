package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/config"
	"github.com/Showichiro/gacha-machine-flutter-kaigi-2025/prize"
)

// Server exposes the kiosk HTTP API: the visitor draw endpoint and the
// operator settings surface. All domain logic lives in the prize package;
// this layer validates requests and translates errors.
type Server struct {
	cfg     *config.Config
	prizes  *prize.Service
	display *prize.DisplayService
	filters *prize.FilterState
	sounds  Notifier
	log     zerolog.Logger
}

func New(cfg *config.Config, prizes *prize.Service, display *prize.DisplayService, filters *prize.FilterState, sounds Notifier, logger zerolog.Logger) *Server {
	if sounds == nil {
		sounds = LogNotifier{log: logger}
	}
	return &Server{
		cfg:     cfg,
		prizes:  prizes,
		display: display,
		filters: filters,
		sounds:  sounds,
		log:     logger,
	}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), cors())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.POST("/gacha/draw", s.draw)
	api.GET("/prizes", s.listPrizes)
	api.GET("/prizes/stats", s.prizeStats)
	api.GET("/prizes/:id", s.getPrize)
	api.POST("/prizes", s.addPrize)
	api.PATCH("/prizes/:id", s.updatePrize)
	api.DELETE("/prizes/:id", s.deletePrize)
	return r
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.Info().Str("addr", addr).Msg("kiosk API listening")
	return s.Router().Run(addr)
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestLogger logs method, path and status for each request (no bodies).
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gacha-kiosk"})
}
