package server

import (
	"context"
	"net/http"
	"time"

	"eaglegym/internal/booking"
	"eaglegym/internal/config"
	"eaglegym/internal/gym"
	"eaglegym/internal/session"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Gyms     gym.Service
	Sessions *session.Manager
	Booking  booking.Service

	// Store and Cache back /health; nil skips the check.
	Store Pinger
	Cache Pinger
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, deps Dependencies) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.GET("/health", NewHealthHandler(deps.Store, deps.Cache).Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router, cfg.PublicHost)

	gymHandler := gym.NewHandler(deps.Gyms)
	router.GET("/gyms", gymHandler.ListGyms)
	router.GET("/gyms/:gymSlug/branches", gymHandler.ListBranches)

	branchHandler := NewBranchHandler(cfg, deps.Gyms)
	bookingHandler := booking.NewHandler(deps.Booking)

	visitor := router.Group("/")
	visitor.Use(session.Middleware(deps.Sessions))
	{
		visitor.GET("/", branchHandler.Landing)
	}

	branch := router.Group("/branches/:branchSlug")
	branch.Use(session.Middleware(deps.Sessions), BranchMiddleware(cfg))
	{
		branch.GET("", branchHandler.BranchPage)
		branch.GET("/offers", branchHandler.Offers)
		branch.GET("/coaches", branchHandler.Coaches)
		branch.GET("/classes", branchHandler.Classes)
		branch.GET("/pt-packages", branchHandler.PtPackages)
		branch.GET("/special-offers", branchHandler.SpecialOffers)
		branch.GET("/book/membership/:offerID", bookingHandler.BookMembership)
		branch.GET("/book/pt/:packageID", bookingHandler.BookPersonalTraining)
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
