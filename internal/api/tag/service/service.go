package tagService

import (
	"FinanceGolang/internal/api/tag"
	tagRepository "FinanceGolang/internal/api/tag/repository"
	"FinanceGolang/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITagService interface {
	GetTagsByType(ctx context.Context, userID string, tagType entity.TagType) ([]entity.Tag, error)
	CreateTag(ctx context.Context, req tag.CreateTagRequest) (entity.Tag, error)
	UpdateTag(ctx context.Context, req tag.UpdateTagRequest) error
	DeleteTag(ctx context.Context, tagID string, userID string) error
}

type tagService struct {
	log           *logrus.Logger
	tagRepository tagRepository.Repository
}

func NewTagService(log *logrus.Logger, tr tagRepository.Repository) ITagService {
	return &tagService{
		log:           log,
		tagRepository: tr,
	}
}
