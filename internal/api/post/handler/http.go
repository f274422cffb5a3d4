package postHandler

import (
	postService "ProjectBlog/internal/api/post/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	log          *logrus.Logger
	postsService postService.IPostsService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps postService.IPostsService,
	validate *validator.Validate,
	middleware middleware.Middleware) *PostHandler {
	return &PostHandler{
		log:          log,
		postsService: ps,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *PostHandler) Start(srv fiber.Router) {
	posts := srv.Group("/blog-posts")
	posts.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreatePost)
	posts.Post("/with-media", h.middleware.NewTokenMiddleware, h.HandleCreatePostWithMedia)
	posts.Get("/", h.HandleGetAllPosts)
	// The my-posts route must register before the :id wildcard.
	posts.Get("/user/my-posts", h.middleware.NewTokenMiddleware, h.HandleGetMyPosts)
	posts.Get("/:id", h.HandleGetPostByID)
	posts.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdatePost)
	posts.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeletePost)
	posts.Put("/:id/media", h.middleware.NewTokenMiddleware, h.HandleAddMedia)
	posts.Delete("/:id/media", h.middleware.NewTokenMiddleware, h.HandleRemoveMedia)
}
