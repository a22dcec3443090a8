package tagService

import (
	"errors"
	"strings"

	"FinanceGolang/internal/api/tag"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *tagService) GetTagsByType(ctx context.Context, userID string, tagType entity.TagType) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if tagType != entity.TagTypeIncome && tagType != entity.TagTypeExpense {
		return nil, tag.ErrInvalidTagType
	}

	repo, err := s.tagRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	tags, err := repo.Tag.ListByUserAndType(ctx, userID, tagType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       string(tagType),
			"error":      err.Error(),
		}).Error("Failed to list tags by type")
		return nil, err
	}

	return tags, nil
}

func (s *tagService) CreateTag(ctx context.Context, req tag.CreateTagRequest) (entity.Tag, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entity.Tag{}, tag.ErrEmptyTagName
	}

	repo, err := s.tagRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Tag{}, err
	}
	defer repo.Rollback()

	_, err = repo.Tag.FindByUserAndName(ctx, req.UserID, name)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
		}).Warn("Tag name already in use")
		return entity.Tag{}, tag.ErrTagNameTaken
	}
	if !errors.Is(err, tag.ErrTagNotFound) {
		return entity.Tag{}, err
	}

	newTag := entity.Tag{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		Name:    name,
		Type:    entity.TagTypeNone,
		Counter: 0,
	}

	if err := repo.Tag.Create(ctx, newTag); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create tag")
		return entity.Tag{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit tag creation")
		return entity.Tag{}, err
	}

	return newTag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, req tag.UpdateTagRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return tag.ErrEmptyTagName
	}

	repo, err := s.tagRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := LoadForUser(ctx, repo.Tag, req.UserID, req.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return tag.ErrInvalidTagID
	}

	if existing.Name == name {
		return nil
	}

	other, err := repo.Tag.FindByUserAndName(ctx, req.UserID, name)
	if err == nil && other.ID != existing.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
		}).Warn("Tag name already in use")
		return tag.ErrTagNameTaken
	}
	if err != nil && !errors.Is(err, tag.ErrTagNotFound) {
		return err
	}

	existing.Name = name
	if err := repo.Tag.Save(ctx, *existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update tag")
		return err
	}

	return repo.Commit()
}

func (s *tagService) DeleteTag(ctx context.Context, tagID string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.tagRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := LoadForUser(ctx, repo.Tag, userID, tagID)
	if err != nil {
		return err
	}
	if existing == nil {
		return tag.ErrInvalidTagID
	}

	// Records referencing the tag survive with tag_id cleared.
	if err := repo.Tag.DetachFromIncomes(ctx, existing.ID); err != nil {
		return err
	}
	if err := repo.Tag.DetachFromReceipts(ctx, existing.ID); err != nil {
		return err
	}

	if err := repo.Tag.Delete(ctx, existing.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"tag_id":     existing.ID,
			"error":      err.Error(),
		}).Error("Failed to delete tag")
		return err
	}

	return repo.Commit()
}
