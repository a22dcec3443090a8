package budgetService

import (
	"strings"

	"FinanceGolang/internal/api/budget"
	budgetRepository "FinanceGolang/internal/api/budget/repository"
	"FinanceGolang/internal/entity"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) GetBudgets(ctx context.Context, userID string, rawMonth string) (budget.BudgetListResponse, error) {
	month := strings.TrimSpace(rawMonth)
	if month == "" {
		month = utils.CurrentMonth()
	}
	if !utils.IsValidMonth(month) {
		return budget.BudgetListResponse{}, budget.ErrInvalidMonthFormat
	}

	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return budget.BudgetListResponse{}, err
	}
	defer repo.Rollback()

	budgets, err := s.seedAndList(ctx, repo.Budget, month)
	if err != nil {
		return budget.BudgetListResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to commit budget seeding")
		return budget.BudgetListResponse{}, err
	}

	return s.makeBudgetList(ctx, userID, month, budgets)
}

func (s *budgetService) UpsertBudgets(ctx context.Context, userID string, req budget.UpsertBudgetsRequest) (budget.BudgetListResponse, error) {
	if !utils.IsValidMonth(req.Month) {
		return budget.BudgetListResponse{}, budget.ErrInvalidMonthFormat
	}
	for _, item := range req.Items {
		if !entity.IsValidSection(item.Section) {
			return budget.BudgetListResponse{}, budget.ErrInvalidSection
		}
	}

	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create budget repository client")
		return budget.BudgetListResponse{}, err
	}
	defer repo.Rollback()

	for _, item := range req.Items {
		row := entity.MonthlyBudget{
			ID:            uuid.NewString(),
			Month:         req.Month,
			Section:       entity.Section(item.Section),
			LimitAmount:   money.Amount(item.LimitAmount),
			PercentTarget: item.PercentTarget.Round(1),
		}
		if err := repo.Budget.Upsert(ctx, row); err != nil {
			return budget.BudgetListResponse{}, err
		}
	}

	budgets, err := s.seedAndList(ctx, repo.Budget, req.Month)
	if err != nil {
		return budget.BudgetListResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to commit budget upsert")
		return budget.BudgetListResponse{}, err
	}

	return s.makeBudgetList(ctx, userID, req.Month, budgets)
}

// seedAndList guarantees all four sections exist for the month before
// reading them back. Missing rows are created with a zero limit; existing
// rows are never touched by the seeding insert.
func (s *budgetService) seedAndList(ctx context.Context, q budgetRepository.Querier, month string) ([]entity.MonthlyBudget, error) {
	for _, section := range entity.AllSections() {
		seed := entity.MonthlyBudget{
			ID:            uuid.NewString(),
			Month:         month,
			Section:       section,
			LimitAmount:   decimal.Zero,
			PercentTarget: decimal.Zero,
		}
		if err := q.Seed(ctx, seed); err != nil {
			return nil, err
		}
	}

	return q.ListByMonth(ctx, month)
}

func (s *budgetService) makeBudgetList(ctx context.Context, userID, month string, budgets []entity.MonthlyBudget) (budget.BudgetListResponse, error) {
	spent, err := s.spentBySection(ctx, userID, month)
	if err != nil {
		return budget.BudgetListResponse{}, err
	}

	items := make([]budget.BudgetItemResponse, 0, len(budgets))
	totalLeft := decimal.Zero
	for _, b := range budgets {
		sectionSpent := spent[b.Section]
		left := b.LimitAmount.Sub(sectionSpent)
		totalLeft = totalLeft.Add(left)
		items = append(items, budget.BudgetItemResponse{
			ID:            b.ID,
			Month:         b.Month,
			Section:       string(b.Section),
			LimitAmount:   money.ToFloat(b.LimitAmount),
			PercentTarget: money.ToFloat(b.PercentTarget),
			Spent:         money.ToFloat(sectionSpent),
			Left:          money.ToFloat(left),
		})
	}

	return budget.BudgetListResponse{
		Month: month,
		Items: items,
		Left:  money.ToFloat(totalLeft),
	}, nil
}

// spentBySection folds the month's per-category expense totals into the four
// budget sections. Sections with no spending map to zero.
func (s *budgetService) spentBySection(ctx context.Context, userID string, month string) (map[entity.Section]decimal.Decimal, error) {
	from, to, err := utils.MonthRange(month)
	if err != nil {
		return nil, budget.ErrInvalidMonthFormat
	}

	aggRepo, err := s.analyticsRepository.NewClient()
	if err != nil {
		return nil, err
	}

	totals, err := aggRepo.Agg.ExpenseTotalsByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	spent := make(map[entity.Section]decimal.Decimal, len(entity.AllSections()))
	for _, section := range entity.AllSections() {
		spent[section] = decimal.Zero
	}
	for _, t := range totals {
		section := entity.SectionOf(t.Category)
		spent[section] = spent[section].Add(t.Total)
	}

	return spent, nil
}
