package categoryService

import (
	"strings"

	"FinanceGolang/internal/api/category"
	categoryRepository "FinanceGolang/internal/api/category/repository"
	"FinanceGolang/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/net/context"
)

// Usage-count helpers shared with the receipt item service. They run on a
// category Querier bound to the caller's transaction. Unlike tags there is no
// type inference, only the count.

// RegisterUsed records one receipt item starting to reference the category.
// No-op for an empty id.
func RegisterUsed(ctx context.Context, q categoryRepository.Querier, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	return q.IncrementCount(ctx, categoryID)
}

// RegisterUnused is the inverse transition; the count never drops below zero.
func RegisterUnused(ctx context.Context, q categoryRepository.Querier, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	return q.DecrementCount(ctx, categoryID)
}

// LoadForUser resolves an optional raw category id. Empty means "no category"
// and yields (nil, nil). Shared categories (no owner) are visible to every
// user; another user's category reads as absent.
func LoadForUser(ctx context.Context, q categoryRepository.Querier, userID string, rawCategoryID string) (*entity.Category, error) {
	if strings.TrimSpace(rawCategoryID) == "" {
		return nil, nil
	}

	if _, err := uuid.Parse(rawCategoryID); err != nil {
		return nil, category.ErrInvalidCategoryID
	}

	cat, err := q.FindByID(ctx, rawCategoryID)
	if err != nil {
		return nil, err
	}

	if cat.UserID != "" && cat.UserID != userID {
		return nil, category.ErrCategoryNotFound
	}

	return &cat, nil
}
