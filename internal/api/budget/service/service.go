package budgetService

import (
	"FinanceGolang/internal/api/budget"
	budgetRepository "FinanceGolang/internal/api/budget/repository"

	analyticsRepository "FinanceGolang/internal/api/analytics/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	GetBudgets(ctx context.Context, userID string, rawMonth string) (budget.BudgetListResponse, error)
	UpsertBudgets(ctx context.Context, userID string, req budget.UpsertBudgetsRequest) (budget.BudgetListResponse, error)

	GetGoals(ctx context.Context, userID string, rawSection string) ([]budget.GoalResponse, error)
	CreateGoal(ctx context.Context, req budget.CreateGoalRequest) (budget.GoalResponse, error)
	UpdateGoal(ctx context.Context, req budget.UpdateGoalRequest) (budget.GoalResponse, error)
	DeleteGoal(ctx context.Context, goalID, userID string) error
}

type budgetService struct {
	log                 *logrus.Logger
	budgetRepository    budgetRepository.Repository
	analyticsRepository analyticsRepository.Repository
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, ar analyticsRepository.Repository) IBudgetService {
	return &budgetService{
		log:                 log,
		budgetRepository:    br,
		analyticsRepository: ar,
	}
}
