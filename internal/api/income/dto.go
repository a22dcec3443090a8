package income

import "github.com/shopspring/decimal"

type CreateIncomeRequest struct {
	UserID        string          `json:"user_id" validate:"required,uuid4"`
	TagID         string          `json:"tag_id"`
	Description   *string         `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	IncomeDate    string          `json:"income_date" validate:"required"`
	ExtraMetadata string          `json:"extra_metadata"`
}

type UpdateIncomeRequest struct {
	ID            string           `json:"id" validate:"required,uuid4"`
	UserID        string           `json:"user_id" validate:"required,uuid4"`
	TagID         *string          `json:"tag_id"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	IncomeDate    *string          `json:"income_date"`
	ExtraMetadata *string          `json:"extra_metadata"`
}

type IncomeResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	TagID         string  `json:"tag_id,omitempty"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	IncomeDate    string  `json:"income_date"`
	ExtraMetadata string  `json:"extra_metadata,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Count   int              `json:"count"`
}
