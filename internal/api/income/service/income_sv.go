package incomeService

import (
	"strings"
	"time"

	"FinanceGolang/internal/api/income"
	tagService "FinanceGolang/internal/api/tag/service"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *incomeService) GetIncomes(ctx context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	incomes, err := repo.Income.ListByUser(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list incomes")
		return nil, err
	}

	return incomes, nil
}

func (s *incomeService) GetIncomeByID(ctx context.Context, id string, userID string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Income{}, err
	}

	in, err := repo.Income.FindByID(ctx, id)
	if err != nil {
		return entity.Income{}, err
	}

	if in.UserID != userID {
		return entity.Income{}, income.ErrIncomeNotFound
	}

	return in, nil
}

func (s *incomeService) CreateIncome(ctx context.Context, req income.CreateIncomeRequest) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Description == nil {
		return entity.Income{}, income.ErrMissingDescription
	}
	description := strings.TrimSpace(*req.Description)
	if description == "" {
		return entity.Income{}, income.ErrEmptyDescription
	}

	incomeDate, err := utils.ParseDate(req.IncomeDate)
	if err != nil {
		return entity.Income{}, income.ErrInvalidIncomeDate
	}

	if !req.Amount.IsPositive() {
		return entity.Income{}, income.ErrInvalidIncomeAmount
	}

	repo, err := s.incomeRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Income{}, err
	}
	defer repo.Rollback()

	tag, err := tagService.LoadForUser(ctx, repo.Tag, req.UserID, req.TagID)
	if err != nil {
		return entity.Income{}, err
	}

	now := time.Now()
	newIncome := entity.Income{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Description:   description,
		Amount:        money.Amount(req.Amount),
		IncomeDate:    incomeDate,
		ExtraMetadata: req.ExtraMetadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if tag != nil {
		newIncome.TagID = tag.ID
	}

	if err := repo.Income.Create(ctx, newIncome); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create income")
		return entity.Income{}, err
	}

	// Row is in place, so the type derivation sees the new association.
	if err := tagService.RegisterAssigned(ctx, repo.Tag, tag); err != nil {
		return entity.Income{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit income creation")
		return entity.Income{}, err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return newIncome, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Income.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.UserID != req.UserID {
		return income.ErrIncomeNotFound
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return income.ErrEmptyDescription
		}
		existing.Description = description
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return income.ErrInvalidIncomeAmount
		}
		existing.Amount = money.Amount(*req.Amount)
	}

	if req.IncomeDate != nil {
		incomeDate, err := utils.ParseDate(*req.IncomeDate)
		if err != nil {
			return income.ErrInvalidIncomeDate
		}
		existing.IncomeDate = incomeDate
	}

	if req.ExtraMetadata != nil {
		existing.ExtraMetadata = *req.ExtraMetadata
	}

	oldTagID := existing.TagID
	newTagID := oldTagID
	tagChanged := false

	var newTag *entity.Tag
	if req.TagID != nil && strings.TrimSpace(*req.TagID) != oldTagID {
		tagChanged = true
		newTag, err = tagService.LoadForUser(ctx, repo.Tag, req.UserID, *req.TagID)
		if err != nil {
			return err
		}
		newTagID = ""
		if newTag != nil {
			newTagID = newTag.ID
		}
	}

	existing.TagID = newTagID
	if err := repo.Income.Save(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update income")
		return err
	}

	// Detach the old tag before attaching the new one. The row already
	// carries the new tag id, so both derivations see the final state.
	if tagChanged {
		if oldTagID != "" {
			oldTag, err := repo.Tag.FindByID(ctx, oldTagID)
			if err != nil {
				return err
			}
			if err := tagService.RegisterUnassigned(ctx, repo.Tag, &oldTag); err != nil {
				return err
			}
		}
		if err := tagService.RegisterAssigned(ctx, repo.Tag, newTag); err != nil {
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit income update")
		return err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.incomeRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Income.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return income.ErrIncomeNotFound
	}

	// Remove the row first so the type derivation no longer counts it.
	if err := repo.Income.Delete(ctx, existing.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete income")
		return err
	}

	if existing.TagID != "" {
		tag, err := repo.Tag.FindByID(ctx, existing.TagID)
		if err != nil {
			return err
		}
		if err := tagService.RegisterUnassigned(ctx, repo.Tag, &tag); err != nil {
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit income deletion")
		return err
	}

	s.invalidateAnalytics(ctx, userID)

	return nil
}
