package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jakestbu/nilch/internal/conf"
	"github.com/jakestbu/nilch/internal/pkg/logger"
	"github.com/jakestbu/nilch/internal/search/service"
	"github.com/jakestbu/nilch/internal/view"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	searchService *service.SearchService,
) (*HTTPServer, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLogger(log))

	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	static, err := view.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	// Liveness probe
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "nilch",
			"status":  "ok",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	searchService.RegisterRoutes(&router.RouterGroup)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)

	return &HTTPServer{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger: log,
	}, nil
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
