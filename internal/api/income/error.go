package income

import "FinanceGolang/pkg/response"

var (
	ErrIncomeNotFound      = response.NewError(404, "Income not found")
	ErrMissingDescription  = response.NewError(400, "Missing description")
	ErrEmptyDescription    = response.NewError(400, "Description cannot be empty")
	ErrInvalidIncomeDate   = response.NewError(400, "Invalid income_date format, expected YYYY-MM-DD")
	ErrInvalidIncomeAmount = response.NewError(400, "Amount must be a positive number")
)
