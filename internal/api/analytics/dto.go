package analytics

type DonutCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TagsByCategory nests category -> tag -> issue date -> amount.
type DonutResponse struct {
	TotalAmount    float64                                  `json:"total_amount"`
	Categories     []DonutCategory                          `json:"categories"`
	TagsByCategory map[string]map[string]map[string]float64 `json:"tags_by_category"`
}

type SummaryResponse struct {
	Month         string  `json:"month"`
	TotalIncomes  float64 `json:"total_incomes"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type DashboardResponse struct {
	Month              string             `json:"month"`
	TotalIncomes       float64            `json:"total_incomes"`
	TotalExpenses      float64            `json:"total_expenses"`
	Balance            float64            `json:"balance"`
	Trend              []TrendPoint       `json:"trend"`
	TotalsBySection    map[string]float64 `json:"totals_by_section"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	IncomesByTag       map[string]float64 `json:"incomes_by_tag"`
}
