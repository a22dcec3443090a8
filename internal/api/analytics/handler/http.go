package analyticsHandler

import (
	analyticsService "FinanceGolang/internal/api/analytics/service"
	"FinanceGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	analyticsService analyticsService.IAnalyticsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	analyticsService analyticsService.IAnalyticsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Start(srv fiber.Router) {
	analytics := srv.Group("/analytics")

	analytics.Get("/donut", h.middleware.NewTokenMiddleware, h.GetDonut)
	analytics.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)

	srv.Get("/dashboard", h.middleware.NewTokenMiddleware, h.GetDashboard)
}
