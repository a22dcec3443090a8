package budget

import "github.com/shopspring/decimal"

type UpsertBudgetItem struct {
	Section       string          `json:"section" validate:"required"`
	LimitAmount   decimal.Decimal `json:"limit_amount"`
	PercentTarget decimal.Decimal `json:"percent_target"`
}

type UpsertBudgetsRequest struct {
	Month string             `json:"month" validate:"required"`
	Items []UpsertBudgetItem `json:"items" validate:"required,min=1,dive"`
}

type BudgetItemResponse struct {
	ID            string  `json:"id"`
	Month         string  `json:"month"`
	Section       string  `json:"section"`
	LimitAmount   float64 `json:"limit_amount"`
	PercentTarget float64 `json:"percent_target"`
	Spent         float64 `json:"spent"`
	Left          float64 `json:"left"`
}

type BudgetListResponse struct {
	Month string               `json:"month"`
	Items []BudgetItemResponse `json:"items"`
	Left  float64              `json:"left"`
}

type CreateGoalRequest struct {
	UserID       string          `json:"user_id" validate:"required,uuid4"`
	Name         string          `json:"name" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Section      string          `json:"section"`
	MonthFrom    string          `json:"month_from"`
	MonthTo      string          `json:"month_to"`
}

type UpdateGoalRequest struct {
	ID           string           `json:"id" validate:"required,uuid4"`
	UserID       string           `json:"user_id" validate:"required,uuid4"`
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	Section      *string          `json:"section"`
	MonthFrom    *string          `json:"month_from"`
	MonthTo      *string          `json:"month_to"`
	IsDone       *bool            `json:"is_done"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	TargetAmount float64 `json:"target_amount"`
	Section      string  `json:"section,omitempty"`
	MonthFrom    string  `json:"month_from,omitempty"`
	MonthTo      string  `json:"month_to,omitempty"`
	IsDone       bool    `json:"is_done"`
	CreatedAt    string  `json:"created_at"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Count int            `json:"count"`
}
