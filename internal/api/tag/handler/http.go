package tagHandler

import (
	tagService "FinanceGolang/internal/api/tag/service"
	"FinanceGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TagHandler struct {
	log        *logrus.Logger
	validator  *validator.Validate
	middleware middleware.Middleware
	tagService tagService.ITagService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	tagService tagService.ITagService,
) *TagHandler {
	return &TagHandler{
		log:        log,
		validator:  validate,
		middleware: middleware,
		tagService: tagService,
	}
}

func (h *TagHandler) Start(srv fiber.Router) {
	tags := srv.Group("/tags")

	tags.Get("/income", h.middleware.NewTokenMiddleware, h.GetIncomeTags)
	tags.Get("/expense", h.middleware.NewTokenMiddleware, h.GetExpenseTags)
	tags.Post("/", h.middleware.NewTokenMiddleware, h.CreateTag)
	tags.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateTag)
	tags.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTag)
}
