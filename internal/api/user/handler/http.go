package userHandler

import (
	userService "ProjectBlog/internal/api/user/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	userService userService.IUserService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	us userService.IUserService,
	validate *validator.Validate,
	middleware middleware.Middleware) *UserHandler {
	return &UserHandler{
		log:         log,
		userService: us,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")
	users.Get("/", h.middleware.NewTokenMiddleware, h.HandleGetAllUsers)
	// The profile route must register before the :id wildcard.
	users.Get("/profile", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
	users.Put("/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	users.Delete("/profile", h.middleware.NewTokenMiddleware, h.HandleDeleteProfile)
	users.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetUserByID)
}
