package commentHandler

import (
	commentService "ProjectBlog/internal/api/comment/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	log            *logrus.Logger
	commentService commentService.ICommentService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs commentService.ICommentService,
	validate *validator.Validate,
	middleware middleware.Middleware) *CommentHandler {
	return &CommentHandler{
		log:            log,
		commentService: cs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *CommentHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")
	comments.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateComment)
	comments.Get("/post/:postId", h.HandleGetCommentsByPost)
	comments.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateComment)
	comments.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
}
