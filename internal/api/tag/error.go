package tag

import "FinanceGolang/pkg/response"

var (
	ErrTagNotFound    = response.NewError(404, "Tag not found")
	ErrTagNotOwned    = response.NewError(403, "Tag does not belong to this user")
	ErrInvalidTagID   = response.NewError(400, "Invalid tag_id format")
	ErrInvalidTagType = response.NewError(400, "Invalid tag type")
	ErrEmptyTagName   = response.NewError(400, "Tag name cannot be empty")
	ErrTagNameTaken   = response.NewError(409, "Tag with this name already exists")
)
