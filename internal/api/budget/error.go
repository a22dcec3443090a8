package budget

import "FinanceGolang/pkg/response"

var (
	ErrInvalidMonthFormat = response.NewError(400, "Invalid month format, expected YYYY-MM")
	ErrInvalidSection     = response.NewError(400, "Invalid section")
	ErrGoalNotFound       = response.NewError(404, "Goal not found")
	ErrInvalidGoalType    = response.NewError(400, "Invalid goal type")
	ErrEmptyGoalName      = response.NewError(400, "Goal name cannot be empty")
)
