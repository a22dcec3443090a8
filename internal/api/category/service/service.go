package categoryService

import (
	"FinanceGolang/internal/api/category"
	categoryRepository "FinanceGolang/internal/api/category/repository"
	"FinanceGolang/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	GetCategories(ctx context.Context, userID string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (entity.Category, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, categoryID string, userID string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
	}
}
