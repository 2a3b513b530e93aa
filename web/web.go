// Package web provides the panel's HTTP server: routing, middleware,
// the websocket relay and background job scheduling.
package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/velmara/heritage-panel/config"
	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/controller"
	"github.com/velmara/heritage-panel/web/job"
	"github.com/velmara/heritage-panel/web/middleware"
	"github.com/velmara/heritage-panel/web/service"
	"github.com/velmara/heritage-panel/web/websocket"
)

// Server is the panel web server. It owns the websocket hub and hands
// it to the services that broadcast through it.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	hub *websocket.Hub

	tokenService        *service.TokenService
	notificationService *service.NotificationService
	contactService      *service.ContactService
	serverService       *service.ServerService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initServices builds the hub and the service graph around it.
func (s *Server) initServices() {
	s.hub = websocket.NewHub()
	s.tokenService = service.NewTokenService()
	s.notificationService = service.NewNotificationService(s.hub)
	s.contactService = service.NewContactService(s.notificationService)
	s.serverService = service.NewServerService(s.hub)
}

// initRouter configures gin, middleware and controllers.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(config.GetSessionSecret()))
	engine.Use(sessions.Sessions(config.GetName(), store))

	engine.Static("/media", config.GetMediaFolder())

	api := engine.Group("/")
	protected := engine.Group("/")
	protected.Use(middleware.BearerAuth(s.tokenService))

	controller.NewAuthController(api, protected, s.tokenService)
	controller.NewNotificationController(protected, s.notificationService)

	contactPublic := api.Group("")
	contactPublic.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
	controller.NewContactController(contactPublic, protected, s.contactService)

	controller.NewEventController(api, protected)
	controller.NewGalleryController(api, protected)
	controller.NewJobPostingController(api, protected)
	controller.NewCollaboratorController(api, protected)
	controller.NewServerController(protected, s.serverService)
	controller.NewWebSocketController(api, s.hub, s.tokenService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewNotificationPruneJob(s.notificationService))
	s.cron.AddJob("@daily", job.NewStaleContactJob(s.contactService))
}

// Start initializes services, the router, the hub and the cron
// scheduler, then begins serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.initServices()
	go s.hub.Run()

	s.cron = cron.New()
	s.cron.Start()
	s.startTask()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%v:%v", config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server error:", err)
		}
	}()

	logger.Infof("web server listening on %s", addr)
	return nil
}

// Stop shuts the server down gracefully: HTTP first, then the hub and
// the scheduler.
func (s *Server) Stop() error {
	s.cancel()

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	if s.hub != nil {
		s.hub.Stop()
	}
	if s.cron != nil {
		s.cron.Stop()
	}
	return err
}

// GetCtx returns the server context.
func (s *Server) GetCtx() context.Context {
	return s.ctx
}

// GetHub returns the websocket hub for status reporting.
func (s *Server) GetHub() *websocket.Hub {
	return s.hub
}
