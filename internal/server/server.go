package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/gilded-spoon/backend/config"
	"github.com/pageza/gilded-spoon/backend/internal/api"
	"github.com/pageza/gilded-spoon/backend/internal/database"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/middleware"
	"github.com/pageza/gilded-spoon/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires services, middleware and routes. redisClient may be nil, in
// which case sessions live in memory and cooking is not rate limited.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	book := kitchen.DefaultRecipeBook()
	if err := book.Validate(); err != nil {
		return nil, err
	}

	var sessions service.SessionStore
	if cfg.SessionStore == config.StoreRedis && redisClient != nil {
		sessions = service.NewRedisSessionStore(redisClient, cfg.SessionTTL)
	} else {
		log.Printf("Using in-memory session store")
		sessions = service.NewMemorySessionStore(cfg.SessionTTL)
	}

	var journal service.Journal
	checks := map[string]api.Pinger{}
	if db != nil {
		journal = service.NewGormJournal(db)
		checks["database"] = func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
	}

	var cookLimit gin.HandlerFunc
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		if cfg.CookRateLimit > 0 {
			cookLimit = middleware.NewCookRateLimiter(redisClient, cfg.CookRateLimit).Middleware()
		}
	}

	kitchenService := service.NewKitchenService(kitchen.NewResolver(book), sessions, journal)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)

	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorHandler())
	if len(cfg.CORSOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSOrigins))
	}

	api.RegisterRoutes(router,
		api.NewKitchenHandler(kitchenService, tokens),
		api.NewHealthHandler(checks),
		cookLimit,
	)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
