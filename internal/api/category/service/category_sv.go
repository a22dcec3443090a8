package categoryService

import (
	"errors"
	"strings"
	"time"

	"FinanceGolang/internal/api/category"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) GetCategories(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Category.ListForUser(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list categories")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entity.Category{}, category.ErrEmptyCategoryName
	}

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Category{}, err
	}
	defer repo.Rollback()

	_, err = repo.Category.FindByUserAndName(ctx, req.UserID, name)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
		}).Warn("Category name already in use")
		return entity.Category{}, category.ErrCategoryNameTaken
	}
	if !errors.Is(err, category.ErrCategoryNotFound) {
		return entity.Category{}, err
	}

	if req.ParentID != "" {
		if _, err := LoadForUser(ctx, repo.Category, req.UserID, req.ParentID); err != nil {
			if errors.Is(err, category.ErrCategoryNotFound) {
				return entity.Category{}, category.ErrParentNotFound
			}
			return entity.Category{}, err
		}
	}

	newCategory := entity.Category{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ParentID:  req.ParentID,
		Name:      name,
		Count:     0,
		IsPinned:  req.IsPinned,
		CreatedAt: time.Now(),
	}

	if err := repo.Category.Create(ctx, newCategory); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return entity.Category{}, err
	}

	if err := repo.Commit(); err != nil {
		return entity.Category{}, err
	}

	return newCategory, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return category.ErrEmptyCategoryName
	}

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := LoadForUser(ctx, repo.Category, req.UserID, req.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return category.ErrInvalidCategoryID
	}

	existing.Name = name
	if req.IsPinned != nil {
		existing.IsPinned = *req.IsPinned
	}

	if err := repo.Category.Save(ctx, *existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return err
	}

	return repo.Commit()
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := LoadForUser(ctx, repo.Category, userID, categoryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return category.ErrInvalidCategoryID
	}

	// Items referencing the category survive with category_id cleared.
	if err := repo.Category.DetachFromItems(ctx, existing.ID); err != nil {
		return err
	}

	if err := repo.Category.Delete(ctx, existing.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": existing.ID,
			"error":       err.Error(),
		}).Error("Failed to delete category")
		return err
	}

	return repo.Commit()
}
