package analyticsService

import (
	"errors"
	"testing"
	"time"

	"FinanceGolang/internal/api/analytics"
	analyticsRepository "FinanceGolang/internal/api/analytics/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeAggQuerier struct {
	incomesByMonth  map[string]decimal.Decimal
	expensesByMonth map[string]decimal.Decimal
	expenseTotals   []analyticsRepository.CategoryTotal
	incomeTotals    []analyticsRepository.CategoryTotal
	donutRows       []analyticsRepository.DonutRow
}

var _ analyticsRepository.Querier = (*fakeAggQuerier)(nil)

func (f *fakeAggQuerier) SumIncomes(_ context.Context, _ string, from, _ time.Time) (decimal.Decimal, error) {
	return f.incomesByMonth[from.Format("2006-01")], nil
}

func (f *fakeAggQuerier) SumExpenses(_ context.Context, _ string, from, _ time.Time) (decimal.Decimal, error) {
	return f.expensesByMonth[from.Format("2006-01")], nil
}

func (f *fakeAggQuerier) ExpenseTotalsByCategory(_ context.Context, _ string, _, _ time.Time) ([]analyticsRepository.CategoryTotal, error) {
	return f.expenseTotals, nil
}

func (f *fakeAggQuerier) IncomeTotalsByTag(_ context.Context, _ string, _, _ time.Time) ([]analyticsRepository.CategoryTotal, error) {
	return f.incomeTotals, nil
}

func (f *fakeAggQuerier) DonutRows(_ context.Context, _ string, _ string, _, _ time.Time) ([]analyticsRepository.DonutRow, error) {
	return f.donutRows, nil
}

type fakeAggRepository struct {
	agg *fakeAggQuerier
}

func (f *fakeAggRepository) NewClient() (analyticsRepository.Client, error) {
	return analyticsRepository.Client{Agg: f.agg}, nil
}

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (f *fakeCache) GetCached(_ context.Context, key string) (string, bool, error) {
	v, ok := f.store[key]
	return v, ok, nil
}

func (f *fakeCache) SetCached(_ context.Context, key string, value string, _ time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) InvalidatePrefix(_ context.Context, _ string) error {
	return nil
}

func newTestService(agg *fakeAggQuerier) IAnalyticsService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewAnalyticsService(log, &fakeAggRepository{agg: agg}, newFakeCache())
}

func TestParseYearMonth(t *testing.T) {
	t.Run("both absent is ok false", func(t *testing.T) {
		_, _, provided, err := parseYearMonth("", "")
		require.NoError(t, err)
		assert.False(t, provided)
	})

	t.Run("only one provided fails", func(t *testing.T) {
		_, _, _, err := parseYearMonth("2025", "")
		assert.True(t, errors.Is(err, analytics.ErrYearMonthPair))

		_, _, _, err = parseYearMonth("", "3")
		assert.True(t, errors.Is(err, analytics.ErrYearMonthPair))
	})

	t.Run("month out of range", func(t *testing.T) {
		_, _, _, err := parseYearMonth("2025", "13")
		assert.True(t, errors.Is(err, analytics.ErrMonthOutOfRange))

		_, _, _, err = parseYearMonth("2025", "0")
		assert.True(t, errors.Is(err, analytics.ErrMonthOutOfRange))
	})

	t.Run("invalid year", func(t *testing.T) {
		_, _, _, err := parseYearMonth("abcd", "3")
		assert.True(t, errors.Is(err, analytics.ErrInvalidYear))
	})

	t.Run("valid pair", func(t *testing.T) {
		year, month, provided, err := parseYearMonth("2025", "3")
		require.NoError(t, err)
		assert.True(t, provided)
		assert.Equal(t, 2025, year)
		assert.Equal(t, 3, month)
	})
}

func TestGetDonut(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	agg := &fakeAggQuerier{
		donutRows: []analyticsRepository.DonutRow{
			{Category: "Jedlo", Tag: "Lidl", IssueDate: day(2), Amount: decimal.NewFromInt(30)},
			{Category: "Jedlo", Tag: "Lidl", IssueDate: day(2), Amount: decimal.NewFromInt(10)},
			{Category: "Jedlo", Tag: "Tesco", IssueDate: day(5), Amount: decimal.NewFromInt(20)},
			{Category: "Zabava", Tag: "No tag", IssueDate: day(8), Amount: decimal.NewFromInt(40)},
		},
	}
	svc := newTestService(agg)

	t.Run("requires the year month pair", func(t *testing.T) {
		_, err := svc.GetDonut(context.Background(), "u1", "", "", "")
		assert.True(t, errors.Is(err, analytics.ErrYearMonthPair))
	})

	t.Run("aggregates categories in first seen order", func(t *testing.T) {
		res, err := svc.GetDonut(context.Background(), "u1", "2025", "3", "")
		require.NoError(t, err)

		assert.Equal(t, 100.0, res.TotalAmount)
		require.Len(t, res.Categories, 2)

		assert.Equal(t, "Jedlo", res.Categories[0].Category)
		assert.Equal(t, 60.0, res.Categories[0].Amount)
		assert.Equal(t, 60.0, res.Categories[0].Percentage)

		assert.Equal(t, "Zabava", res.Categories[1].Category)
		assert.Equal(t, 40.0, res.Categories[1].Amount)
		assert.Equal(t, 40.0, res.Categories[1].Percentage)

		assert.Equal(t, 40.0, res.TagsByCategory["Jedlo"]["Lidl"]["2025-03-02"])
		assert.Equal(t, 20.0, res.TagsByCategory["Jedlo"]["Tesco"]["2025-03-05"])
		assert.Equal(t, 40.0, res.TagsByCategory["Zabava"]["No tag"]["2025-03-08"])
	})
}

func TestGetSummary(t *testing.T) {
	agg := &fakeAggQuerier{
		incomesByMonth:  map[string]decimal.Decimal{"2025-03": decimal.NewFromInt(1500)},
		expensesByMonth: map[string]decimal.Decimal{"2025-03": decimal.NewFromFloat(420.55)},
	}
	svc := newTestService(agg)

	res, err := svc.GetSummary(context.Background(), "u1", "2025", "3")
	require.NoError(t, err)

	assert.Equal(t, "2025-03", res.Month)
	assert.Equal(t, 1500.0, res.TotalIncomes)
	assert.Equal(t, 420.55, res.TotalExpenses)
	assert.Equal(t, 1079.45, res.Balance)
}

func TestGetDashboard(t *testing.T) {
	agg := &fakeAggQuerier{
		incomesByMonth:  map[string]decimal.Decimal{},
		expensesByMonth: map[string]decimal.Decimal{},
		expenseTotals: []analyticsRepository.CategoryTotal{
			{Category: "Jedlo", Total: decimal.NewFromInt(200)},
			{Category: "Hry", Total: decimal.NewFromInt(50)},
		},
		incomeTotals: []analyticsRepository.CategoryTotal{
			{Category: "Vyplata", Total: decimal.NewFromInt(1800)},
		},
	}
	svc := newTestService(agg)

	res, err := svc.GetDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, res.Trend, 6)
	assert.Equal(t, res.Month, res.Trend[5].Month)

	// All four sections are present even when empty.
	assert.Len(t, res.TotalsBySection, 4)
	assert.Equal(t, 200.0, res.TotalsBySection["POTREBY"])
	assert.Equal(t, 50.0, res.TotalsBySection["VOLNY_CAS"])
	assert.Equal(t, 0.0, res.TotalsBySection["SPORENIE"])
	assert.Equal(t, 0.0, res.TotalsBySection["INVESTOVANIE"])

	assert.Equal(t, 200.0, res.ExpensesByCategory["Jedlo"])
	assert.Equal(t, 1800.0, res.IncomesByTag["Vyplata"])
}
