package receipt

import "FinanceGolang/pkg/response"

var (
	ErrReceiptNotFound     = response.NewError(404, "Receipt not found")
	ErrItemNotFound        = response.NewError(404, "Item not found")
	ErrAccountNotFound     = response.NewError(404, "Account not found")
	ErrNotAccountMember    = response.NewError(403, "User is not a member of this account")
	ErrInvalidIssueDate    = response.NewError(400, "Invalid issue_date format, expected YYYY-MM-DD")
	ErrEmptyItemName       = response.NewError(400, "Item name cannot be empty")
	ErrInvalidQuantity     = response.NewError(400, "Quantity must be a non-negative number")
	ErrInvalidUnitPrice    = response.NewError(400, "Unit price must be a number")
	ErrAlreadyImported     = response.NewError(409, "Receipt already imported")
	ErrExternalFetchFailed = response.NewError(400, "Invalid receiptId or receipt not found")
)
