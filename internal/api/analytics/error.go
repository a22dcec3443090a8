package analytics

import "FinanceGolang/pkg/response"

var (
	ErrYearMonthPair   = response.NewError(400, "Both year and month must be provided together")
	ErrMonthOutOfRange = response.NewError(400, "Month must be between 1 and 12")
	ErrInvalidYear     = response.NewError(400, "Invalid year format")
)
