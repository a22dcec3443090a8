package budgetService

import (
	"errors"
	"testing"
	"time"

	"FinanceGolang/internal/api/budget"
	budgetRepository "FinanceGolang/internal/api/budget/repository"
	"FinanceGolang/internal/entity"

	analyticsRepository "FinanceGolang/internal/api/analytics/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type budgetKey struct {
	month   string
	section entity.Section
}

type fakeBudgetQuerier struct {
	rows map[budgetKey]entity.MonthlyBudget
}

var _ budgetRepository.Querier = (*fakeBudgetQuerier)(nil)

func (f *fakeBudgetQuerier) ListByMonth(_ context.Context, month string) ([]entity.MonthlyBudget, error) {
	out := make([]entity.MonthlyBudget, 0)
	for _, section := range entity.AllSections() {
		if row, ok := f.rows[budgetKey{month, section}]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeBudgetQuerier) Seed(_ context.Context, b entity.MonthlyBudget) error {
	key := budgetKey{b.Month, b.Section}
	if _, exists := f.rows[key]; exists {
		return nil
	}
	f.rows[key] = b
	return nil
}

func (f *fakeBudgetQuerier) Upsert(_ context.Context, b entity.MonthlyBudget) error {
	key := budgetKey{b.Month, b.Section}
	if existing, exists := f.rows[key]; exists {
		existing.LimitAmount = b.LimitAmount
		existing.PercentTarget = b.PercentTarget
		f.rows[key] = existing
		return nil
	}
	f.rows[key] = b
	return nil
}

type fakeGoalQuerier struct {
	goals map[string]entity.Goal
}

var _ budgetRepository.GoalQuerier = (*fakeGoalQuerier)(nil)

func (f *fakeGoalQuerier) FindByID(_ context.Context, id string) (entity.Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return entity.Goal{}, budget.ErrGoalNotFound
	}
	return g, nil
}

func (f *fakeGoalQuerier) ListByUser(_ context.Context, userID string) ([]entity.Goal, error) {
	out := make([]entity.Goal, 0)
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalQuerier) Create(_ context.Context, g entity.Goal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalQuerier) Save(_ context.Context, g entity.Goal) error {
	if _, ok := f.goals[g.ID]; !ok {
		return budget.ErrGoalNotFound
	}
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalQuerier) Delete(_ context.Context, id string) error {
	if _, ok := f.goals[id]; !ok {
		return budget.ErrGoalNotFound
	}
	delete(f.goals, id)
	return nil
}

type fakeBudgetRepository struct {
	budgets *fakeBudgetQuerier
	goals   *fakeGoalQuerier
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{
		budgets: &fakeBudgetQuerier{rows: make(map[budgetKey]entity.MonthlyBudget)},
		goals:   &fakeGoalQuerier{goals: make(map[string]entity.Goal)},
	}
}

func (f *fakeBudgetRepository) NewClient(_ bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budget:   f.budgets,
		Goal:     f.goals,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeExpenseQuerier struct {
	expenseTotals []analyticsRepository.CategoryTotal
}

var _ analyticsRepository.Querier = (*fakeExpenseQuerier)(nil)

func (f *fakeExpenseQuerier) SumIncomes(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeExpenseQuerier) SumExpenses(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeExpenseQuerier) ExpenseTotalsByCategory(_ context.Context, _ string, _, _ time.Time) ([]analyticsRepository.CategoryTotal, error) {
	return f.expenseTotals, nil
}

func (f *fakeExpenseQuerier) IncomeTotalsByTag(_ context.Context, _ string, _, _ time.Time) ([]analyticsRepository.CategoryTotal, error) {
	return nil, nil
}

func (f *fakeExpenseQuerier) DonutRows(_ context.Context, _ string, _ string, _, _ time.Time) ([]analyticsRepository.DonutRow, error) {
	return nil, nil
}

type fakeAnalyticsRepository struct {
	agg *fakeExpenseQuerier
}

func (f *fakeAnalyticsRepository) NewClient() (analyticsRepository.Client, error) {
	return analyticsRepository.Client{Agg: f.agg}, nil
}

func newTestBudgetService(repo *fakeBudgetRepository, totals []analyticsRepository.CategoryTotal) IBudgetService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewBudgetService(log, repo, &fakeAnalyticsRepository{agg: &fakeExpenseQuerier{expenseTotals: totals}})
}

func TestGetBudgets(t *testing.T) {
	t.Run("rejects malformed months", func(t *testing.T) {
		svc := newTestBudgetService(newFakeBudgetRepository(), nil)

		_, err := svc.GetBudgets(context.Background(), "u1", "03-2025")
		assert.True(t, errors.Is(err, budget.ErrInvalidMonthFormat))
	})

	t.Run("impossible calendar months seed nothing", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, nil)

		for _, raw := range []string{"2025-13", "2025-00"} {
			_, err := svc.GetBudgets(context.Background(), "u1", raw)
			assert.True(t, errors.Is(err, budget.ErrInvalidMonthFormat), raw)
		}

		assert.Empty(t, repo.budgets.rows)
	})

	t.Run("seeds all four sections with zero limits", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, nil)

		res, err := svc.GetBudgets(context.Background(), "u1", "2025-03")
		require.NoError(t, err)

		assert.Equal(t, "2025-03", res.Month)
		require.Len(t, res.Items, 4)
		for _, item := range res.Items {
			assert.Equal(t, 0.0, item.LimitAmount)
			assert.Equal(t, 0.0, item.Spent)
		}
	})

	t.Run("seeding never overwrites existing limits", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, nil)

		_, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-03",
			Items: []budget.UpsertBudgetItem{
				{Section: "POTREBY", LimitAmount: decimal.NewFromInt(600)},
			},
		})
		require.NoError(t, err)

		res, err := svc.GetBudgets(context.Background(), "u1", "2025-03")
		require.NoError(t, err)

		var potreby *budget.BudgetItemResponse
		for i := range res.Items {
			if res.Items[i].Section == "POTREBY" {
				potreby = &res.Items[i]
			}
		}
		require.NotNil(t, potreby)
		assert.Equal(t, 600.0, potreby.LimitAmount)
	})

	t.Run("folds spending into sections and computes left", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, []analyticsRepository.CategoryTotal{
			{Category: "Jedlo", Total: decimal.NewFromInt(150)},
			{Category: "Byvanie", Total: decimal.NewFromInt(350)},
			{Category: "Hry", Total: decimal.NewFromInt(40)},
		})

		_, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-03",
			Items: []budget.UpsertBudgetItem{
				{Section: "POTREBY", LimitAmount: decimal.NewFromInt(600)},
			},
		})
		require.NoError(t, err)

		res, err := svc.GetBudgets(context.Background(), "u1", "2025-03")
		require.NoError(t, err)

		bySection := make(map[string]budget.BudgetItemResponse)
		for _, item := range res.Items {
			bySection[item.Section] = item
		}

		assert.Equal(t, 500.0, bySection["POTREBY"].Spent)
		assert.Equal(t, 100.0, bySection["POTREBY"].Left)
		assert.Equal(t, 40.0, bySection["VOLNY_CAS"].Spent)
		assert.Equal(t, -40.0, bySection["VOLNY_CAS"].Left)

		// 100 - 40 + 0 + 0 across the four sections.
		assert.Equal(t, 60.0, res.Left)
	})
}

func TestUpsertBudgets(t *testing.T) {
	svc := newTestBudgetService(newFakeBudgetRepository(), nil)

	t.Run("rejects unknown sections", func(t *testing.T) {
		_, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-03",
			Items: []budget.UpsertBudgetItem{{Section: "OTHER"}},
		})
		assert.True(t, errors.Is(err, budget.ErrInvalidSection))
	})

	t.Run("rejects malformed months", func(t *testing.T) {
		for _, raw := range []string{"2025/03", "2025-13"} {
			_, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
				Month: raw,
				Items: []budget.UpsertBudgetItem{{Section: "POTREBY"}},
			})
			assert.True(t, errors.Is(err, budget.ErrInvalidMonthFormat), raw)
		}
	})

	t.Run("updates existing rows in place", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, nil)

		first, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-04",
			Items: []budget.UpsertBudgetItem{
				{Section: "SPORENIE", LimitAmount: decimal.NewFromInt(100)},
			},
		})
		require.NoError(t, err)

		second, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-04",
			Items: []budget.UpsertBudgetItem{
				{Section: "SPORENIE", LimitAmount: decimal.NewFromInt(250)},
			},
		})
		require.NoError(t, err)

		firstBySection := make(map[string]budget.BudgetItemResponse)
		for _, item := range first.Items {
			firstBySection[item.Section] = item
		}
		secondBySection := make(map[string]budget.BudgetItemResponse)
		for _, item := range second.Items {
			secondBySection[item.Section] = item
		}

		require.Len(t, second.Items, 4)
		assert.Equal(t, firstBySection["SPORENIE"].ID, secondBySection["SPORENIE"].ID)
		assert.Equal(t, 250.0, secondBySection["SPORENIE"].LimitAmount)
	})

	t.Run("accepts all four sections in one request", func(t *testing.T) {
		repo := newFakeBudgetRepository()
		svc := newTestBudgetService(repo, nil)

		res, err := svc.UpsertBudgets(context.Background(), "u1", budget.UpsertBudgetsRequest{
			Month: "2025-05",
			Items: []budget.UpsertBudgetItem{
				{Section: "POTREBY", LimitAmount: decimal.NewFromInt(500)},
				{Section: "VOLNY_CAS", LimitAmount: decimal.NewFromInt(150)},
				{Section: "SPORENIE", LimitAmount: decimal.NewFromInt(200)},
				{Section: "INVESTOVANIE", LimitAmount: decimal.NewFromInt(100)},
			},
		})
		require.NoError(t, err)

		require.Len(t, res.Items, 4)
		assert.Equal(t, 950.0, res.Left)
	})
}

func TestGoalsLifecycle(t *testing.T) {
	repo := newFakeBudgetRepository()
	svc := newTestBudgetService(repo, nil)

	t.Run("create validates name and type", func(t *testing.T) {
		_, err := svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID: "u1", Name: "   ", Type: "monthly",
		})
		assert.True(t, errors.Is(err, budget.ErrEmptyGoalName))

		_, err = svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID: "u1", Name: "Dovolenka", Type: "weekly",
		})
		assert.True(t, errors.Is(err, budget.ErrInvalidGoalType))
	})

	t.Run("full lifecycle", func(t *testing.T) {
		created, err := svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID:       "u1",
			Name:         "Dovolenka",
			Type:         "longterm",
			TargetAmount: decimal.NewFromInt(2000),
			MonthFrom:    "2025-01",
			MonthTo:      "2025-12",
		})
		require.NoError(t, err)
		assert.False(t, created.IsDone)

		done := true
		updated, err := svc.UpdateGoal(context.Background(), budget.UpdateGoalRequest{
			ID:     created.ID,
			UserID: "u1",
			IsDone: &done,
		})
		require.NoError(t, err)
		assert.True(t, updated.IsDone)
		assert.Equal(t, "Dovolenka", updated.Name)

		goals, err := svc.GetGoals(context.Background(), "u1", "")
		require.NoError(t, err)
		require.Len(t, goals, 1)

		require.NoError(t, svc.DeleteGoal(context.Background(), created.ID, "u1"))

		goals, err = svc.GetGoals(context.Background(), "u1", "")
		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("list filters by section", func(t *testing.T) {
		_, err := svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID: "u3", Name: "Auto", Type: "longterm", Section: "SPORENIE",
		})
		require.NoError(t, err)
		_, err = svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID: "u3", Name: "Akcie", Type: "longterm", Section: "INVESTOVANIE",
		})
		require.NoError(t, err)

		goals, err := svc.GetGoals(context.Background(), "u3", "SPORENIE")
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "Auto", goals[0].Name)

		_, err = svc.GetGoals(context.Background(), "u3", "HOBBY")
		assert.True(t, errors.Is(err, budget.ErrInvalidSection))
	})

	t.Run("foreign goals are invisible", func(t *testing.T) {
		created, err := svc.CreateGoal(context.Background(), budget.CreateGoalRequest{
			UserID: "u1", Name: "Rezerva", Type: "monthly",
		})
		require.NoError(t, err)

		err = svc.DeleteGoal(context.Background(), created.ID, "u2")
		assert.True(t, errors.Is(err, budget.ErrGoalNotFound))
	})
}
