package config

import (
	"ProjectBlog/database/postgres"
	authHandler "ProjectBlog/internal/api/auth/handler"
	authRepository "ProjectBlog/internal/api/auth/repository"
	authService "ProjectBlog/internal/api/auth/service"
	commentHandler "ProjectBlog/internal/api/comment/handler"
	commentRepository "ProjectBlog/internal/api/comment/repository"
	commentService "ProjectBlog/internal/api/comment/service"
	postHandler "ProjectBlog/internal/api/post/handler"
	postRepository "ProjectBlog/internal/api/post/repository"
	postService "ProjectBlog/internal/api/post/service"
	userHandler "ProjectBlog/internal/api/user/handler"
	userService "ProjectBlog/internal/api/user/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	s3Client    s3.ItfS3
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() error {
	// The media bucket must exist before any upload is attempted.
	if err := s.s3Client.EnsureBucket(); err != nil {
		return fmt.Errorf("failed to ensure media bucket: %w", err)
	}

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)

	// The token guard resolves claims against stored users, so the
	// middleware depends on the auth service.
	s.middleware = middleware.New(s.log, authServices)

	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// User Domain
	userServices := userService.New(s.log, authRepo, s.utils)
	userHandlers := userHandler.New(s.log, userServices, s.validator, s.middleware)

	// Blog Post Domain
	postRepo := postRepository.New(s.db, s.log)
	postServices := postService.New(s.log, postRepo, s.s3Client, s.utils)
	postHandlers := postHandler.New(s.log, postServices, s.validator, s.middleware)

	// Comment Domain
	commentRepo := commentRepository.New(s.db, s.log)
	commentServices := commentService.New(s.log, commentRepo, s.utils)
	commentHandlers := commentHandler.New(s.log, commentServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, userHandlers, postHandlers, commentHandlers)
	return nil
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
