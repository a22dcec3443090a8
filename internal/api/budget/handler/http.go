package budgetHandler

import (
	budgetService "FinanceGolang/internal/api/budget/service"
	"FinanceGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budgets := srv.Group("/budgets")

	budgets.Get("/", h.middleware.NewTokenMiddleware, h.GetBudgets)
	budgets.Put("/:month", h.middleware.NewTokenMiddleware, h.UpsertBudgets)

	goals := srv.Group("/goals")

	goals.Get("/", h.middleware.NewTokenMiddleware, h.GetGoals)
	goals.Post("/", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goals.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goals.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
}
