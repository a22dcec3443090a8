package incomeHandler

import (
	incomeService "FinanceGolang/internal/api/income/service"
	"FinanceGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type IncomeHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	incomeService incomeService.IIncomeService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	incomeService incomeService.IIncomeService,
) *IncomeHandler {
	return &IncomeHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		incomeService: incomeService,
	}
}

func (h *IncomeHandler) Start(srv fiber.Router) {
	incomes := srv.Group("/incomes")

	incomes.Get("/", h.middleware.NewTokenMiddleware, h.GetIncomes)
	incomes.Get("/:id", h.middleware.NewTokenMiddleware, h.GetIncomeByID)
	incomes.Post("/", h.middleware.NewTokenMiddleware, h.CreateIncome)
	incomes.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateIncome)
	incomes.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteIncome)
}
