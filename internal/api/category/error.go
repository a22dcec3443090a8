package category

import "FinanceGolang/pkg/response"

var (
	ErrCategoryNotFound  = response.NewError(404, "Category not found")
	ErrCategoryNotOwned  = response.NewError(403, "Category does not belong to this user")
	ErrInvalidCategoryID = response.NewError(400, "Invalid category_id format")
	ErrEmptyCategoryName = response.NewError(400, "Category name cannot be empty")
	ErrParentNotFound    = response.NewError(404, "Parent category not found")
	ErrCategoryNameTaken = response.NewError(409, "Category with this name already exists")
)
