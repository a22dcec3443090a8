package analyticsService

import (
	"fmt"
	"strconv"
	"time"

	"FinanceGolang/internal/api/analytics"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// parseYearMonth enforces the shared both-or-neither rule. When both values
// are absent it reports ok=false without error; callers decide whether that
// means "default to now" or "required".
func parseYearMonth(rawYear, rawMonth string) (int, int, bool, error) {
	if rawYear == "" && rawMonth == "" {
		return 0, 0, false, nil
	}
	if rawYear == "" || rawMonth == "" {
		return 0, 0, false, analytics.ErrYearMonthPair
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		return 0, 0, false, analytics.ErrInvalidYear
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false, analytics.ErrMonthOutOfRange
	}

	return year, month, true, nil
}

func monthBounds(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (s *analyticsService) GetDonut(ctx context.Context, userID string, rawYear, rawMonth, accountID string) (analytics.DonutResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	year, month, provided, err := parseYearMonth(rawYear, rawMonth)
	if err != nil {
		return analytics.DonutResponse{}, err
	}
	if !provided {
		return analytics.DonutResponse{}, analytics.ErrYearMonthPair
	}

	cacheKey := fmt.Sprintf("analytics:%s:donut:%04d-%02d:%s", userID, year, month, accountID)
	var cached analytics.DonutResponse
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	repo, err := s.analyticsRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return analytics.DonutResponse{}, err
	}

	from, to := monthBounds(year, month)

	rows, err := repo.Agg.DonutRows(ctx, userID, accountID, from, to)
	if err != nil {
		return analytics.DonutResponse{}, err
	}

	total := decimal.Zero
	categoryOrder := make([]string, 0)
	categoryTotals := make(map[string]decimal.Decimal)
	tagsByCategory := make(map[string]map[string]map[string]float64)

	for _, row := range rows {
		total = total.Add(row.Amount)

		if _, seen := categoryTotals[row.Category]; !seen {
			categoryOrder = append(categoryOrder, row.Category)
		}
		categoryTotals[row.Category] = categoryTotals[row.Category].Add(row.Amount)

		if tagsByCategory[row.Category] == nil {
			tagsByCategory[row.Category] = make(map[string]map[string]float64)
		}
		if tagsByCategory[row.Category][row.Tag] == nil {
			tagsByCategory[row.Category][row.Tag] = make(map[string]float64)
		}
		day := utils.FormatDate(row.IssueDate)
		tagsByCategory[row.Category][row.Tag][day] += money.ToFloat(row.Amount)
	}

	categories := make([]analytics.DonutCategory, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		amount := categoryTotals[name]
		categories = append(categories, analytics.DonutCategory{
			Category:   name,
			Amount:     money.ToFloat(money.Amount(amount)),
			Percentage: money.Percentage(amount, total),
		})
	}

	response := analytics.DonutResponse{
		TotalAmount:    money.ToFloat(money.Amount(total)),
		Categories:     categories,
		TagsByCategory: tagsByCategory,
	}

	s.cacheSet(ctx, cacheKey, response)

	return response, nil
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string, rawYear, rawMonth string) (analytics.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	year, month, provided, err := parseYearMonth(rawYear, rawMonth)
	if err != nil {
		return analytics.SummaryResponse{}, err
	}
	if !provided {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}

	cacheKey := fmt.Sprintf("analytics:%s:summary:%04d-%02d", userID, year, month)
	var cached analytics.SummaryResponse
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	repo, err := s.analyticsRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return analytics.SummaryResponse{}, err
	}

	from, to := monthBounds(year, month)

	incomes, err := repo.Agg.SumIncomes(ctx, userID, from, to)
	if err != nil {
		return analytics.SummaryResponse{}, err
	}

	expenses, err := repo.Agg.SumExpenses(ctx, userID, from, to)
	if err != nil {
		return analytics.SummaryResponse{}, err
	}

	response := analytics.SummaryResponse{
		Month:         utils.FormatMonth(year, month),
		TotalIncomes:  money.ToFloat(money.Amount(incomes)),
		TotalExpenses: money.ToFloat(money.Amount(expenses)),
		Balance:       money.ToFloat(money.Amount(incomes.Sub(expenses))),
	}

	s.cacheSet(ctx, cacheKey, response)

	return response, nil
}

const trendMonths = 6

func (s *analyticsService) GetDashboard(ctx context.Context, userID string) (analytics.DashboardResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	currentMonth := utils.CurrentMonth()

	cacheKey := fmt.Sprintf("analytics:%s:dashboard:%s", userID, currentMonth)
	var cached analytics.DashboardResponse
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	repo, err := s.analyticsRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return analytics.DashboardResponse{}, err
	}

	trend := make([]analytics.TrendPoint, 0, trendMonths)
	for _, m := range utils.LastNMonths(trendMonths, currentMonth) {
		from, to, err := utils.MonthRange(m)
		if err != nil {
			return analytics.DashboardResponse{}, err
		}

		// Two independent scalar sums per month.
		in, err := repo.Agg.SumIncomes(ctx, userID, from, to)
		if err != nil {
			return analytics.DashboardResponse{}, err
		}
		out, err := repo.Agg.SumExpenses(ctx, userID, from, to)
		if err != nil {
			return analytics.DashboardResponse{}, err
		}

		trend = append(trend, analytics.TrendPoint{
			Month:   m,
			Income:  money.ToFloat(money.Amount(in)),
			Expense: money.ToFloat(money.Amount(out)),
		})
	}

	from, to, err := utils.MonthRange(currentMonth)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	expenseTotals, err := repo.Agg.ExpenseTotalsByCategory(ctx, userID, from, to)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	incomeTotals, err := repo.Agg.IncomeTotalsByTag(ctx, userID, from, to)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	sectionTotals := make(map[entity.Section]decimal.Decimal, 4)
	expensesByCategory := make(map[string]float64, len(expenseTotals))
	for _, ct := range expenseTotals {
		section := entity.SectionOf(ct.Category)
		sectionTotals[section] = sectionTotals[section].Add(ct.Total)
		expensesByCategory[ct.Category] = money.ToFloat(money.Amount(ct.Total))
	}

	// Every section appears in the payload, absent ones as zero.
	totalsBySection := make(map[string]float64, 4)
	for _, section := range entity.AllSections() {
		totalsBySection[string(section)] = money.ToFloat(money.Amount(sectionTotals[section]))
	}

	incomesByTag := make(map[string]float64, len(incomeTotals))
	for _, ct := range incomeTotals {
		incomesByTag[ct.Category] = money.ToFloat(money.Amount(ct.Total))
	}

	current := trend[len(trend)-1]

	response := analytics.DashboardResponse{
		Month:              currentMonth,
		TotalIncomes:       current.Income,
		TotalExpenses:      current.Expense,
		Balance:            money.ToFloat(money.Amount(decimal.NewFromFloat(current.Income).Sub(decimal.NewFromFloat(current.Expense)))),
		Trend:              trend,
		TotalsBySection:    totalsBySection,
		ExpensesByCategory: expensesByCategory,
		IncomesByTag:       incomesByTag,
	}

	s.cacheSet(ctx, cacheKey, response)

	return response, nil
}
