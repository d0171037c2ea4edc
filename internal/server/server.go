// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quad/internal/cache"
	"quad/internal/config"
	"quad/internal/database"
	"quad/internal/middleware"
	"quad/internal/repository"
	"quad/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// The Prometheus HTTP collectors register against the default registry, so
// they are created once per process even when several servers are built
// (tests do this).
var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

func prometheusMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New("quad-api")
	})
	return promMW
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository

	profileService *service.ProfileService
	postService    *service.PostService
	commentService *service.CommentService
	followService  *service.FollowService
	feedService    *service.FeedService
}

// NewServer creates a server instance, establishing the database and Redis
// connections from config.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prometheusMiddleware(),
		profileRepo:    repository.NewProfileRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		followRepo:     repository.NewFollowRepository(db),
	}

	server.profileService = service.NewProfileService(server.profileRepo)
	server.postService = service.NewPostService(server.postRepo, server.profileRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo, server.profileRepo)
	server.followService = service.NewFollowService(server.followRepo, server.profileRepo)
	server.feedService = service.NewFeedService(server.postRepo, server.followRepo)

	return server, nil
}

// Shutdown releases the server's database and cache connections.
func (s *Server) Shutdown(_ context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Optional session resolution, so reads can be personalized
	app.Use(middleware.ResolveSession(s.config.SessionSecret))

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (120 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	requireSession := middleware.RequireSession(s.config.SessionSecret)

	// Profile routes
	profiles := api.Group("/profiles")
	profiles.Post("/", s.CreateProfile)
	profiles.Get("/:id/user", s.GetUser)
	profiles.Get("/:id/posts", s.GetUserPosts)
	profiles.Get("/:id/following", s.GetFollowing)
	profiles.Get("/:id/followers", s.GetFollowers)
	profiles.Get("/:id/follow", requireSession, s.GetFollowStatus)
	profiles.Post("/:id/follow", requireSession, s.FollowUser)
	profiles.Delete("/:id/follow", requireSession, s.UnfollowUser)
	profiles.Put("/:id", requireSession, s.UpdateProfile)
	profiles.Get("/:id", s.GetProfile)

	// Post routes: public reads, session-bound writes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", requireSession, middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	// Specific /:id/:resource routes BEFORE generic /:id routes
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", requireSession, middleware.RateLimit(
		s.redis, 20, time.Minute, "create_comment"), s.CreateComment)
	posts.Delete("/:id/comments/:commentId", requireSession, s.DeleteComment)
	posts.Get("/:id/likes", s.GetPostLikes)
	posts.Post("/:id/like", requireSession, s.LikePost)
	posts.Delete("/:id/like", requireSession, s.UnlikePost)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", requireSession, s.UpdatePost)
	posts.Delete("/:id", requireSession, s.DeletePost)

	// Personalized following feed
	api.Get("/feed", requireSession, s.GetFollowingFeed)
}
