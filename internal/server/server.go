package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"imageresizer/internal/config"
	"imageresizer/internal/handler"
	"imageresizer/internal/i18n"
	"imageresizer/internal/service"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        *zap.Logger
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	imageService, err := service.NewFromConfig(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	fallback, err := i18n.ParseLanguage(cfg.App.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_LANGUAGE: %w", err)
	}
	catalog := i18n.NewCatalog(cfg.App.LocalesDir, fallback, log)

	h := handler.NewHandler(imageService, catalog, log)

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        NewRouter(h),
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		cfg: cfg,
		log: log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

func NewRouter(h *handler.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/dimensions/standard", h.StandardDimensions)
		api.GET("/languages", h.Languages)
		api.GET("/translations/:language", h.Translations)
		api.POST("/images/inspect", h.InspectImage)
		api.POST("/images/estimate", h.EstimateImage)
		api.POST("/images/resize", h.ResizeImage)
	}

	return router
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("host", s.cfg.Server.Host),
		zap.String("port", s.cfg.Server.Port),
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
