package receiptService

import (
	"strings"
	"time"

	"FinanceGolang/internal/api/receipt"
	receiptRepository "FinanceGolang/internal/api/receipt/repository"
	tagService "FinanceGolang/internal/api/tag/service"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/money"
	"FinanceGolang/pkg/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *receiptService) GetReceipts(ctx context.Context, userID string) ([]entity.Receipt, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.receiptRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	receipts, err := repo.Receipt.ListByUser(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list receipts")
		return nil, err
	}

	return receipts, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, id string, userID string) (entity.Receipt, []entity.ReceiptItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.receiptRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Receipt{}, nil, err
	}

	rec, err := s.loadOwnedReceipt(ctx, repo, id, userID)
	if err != nil {
		return entity.Receipt{}, nil, err
	}

	items, err := repo.Item.ListByReceipt(ctx, rec.ID)
	if err != nil {
		return entity.Receipt{}, nil, err
	}

	return rec, items, nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req receipt.CreateReceiptRequest) (entity.Receipt, error) {
	requestID := contextPkg.GetRequestID(ctx)

	issueDate, err := utils.ParseDate(req.IssueDate)
	if err != nil {
		return entity.Receipt{}, receipt.ErrInvalidIssueDate
	}

	repo, err := s.receiptRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Receipt{}, err
	}
	defer repo.Rollback()

	account, err := repo.Account.FindByID(ctx, req.AccountID)
	if err != nil {
		return entity.Receipt{}, err
	}

	member, err := repo.Account.IsMember(ctx, req.UserID, account.ID)
	if err != nil {
		return entity.Receipt{}, err
	}
	if !member {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"account_id": account.ID,
		}).Warn("User is not a member of the target account")
		return entity.Receipt{}, receipt.ErrNotAccountMember
	}

	tag, err := tagService.LoadForUser(ctx, repo.Tag, req.UserID, req.TagID)
	if err != nil {
		return entity.Receipt{}, err
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = account.Currency
	}

	newReceipt := entity.Receipt{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		AccountID:     account.ID,
		Description:   strings.TrimSpace(req.Description),
		IssueDate:     issueDate,
		Currency:      currency,
		TotalAmount:   money.Amount(req.TotalAmount),
		ExtraMetadata: req.ExtraMetadata,
		CreatedAt:     time.Now(),
	}
	if tag != nil {
		newReceipt.TagID = tag.ID
	}

	if err := repo.Receipt.Create(ctx, newReceipt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create receipt")
		return entity.Receipt{}, err
	}

	if err := tagService.RegisterAssigned(ctx, repo.Tag, tag); err != nil {
		return entity.Receipt{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit receipt creation")
		return entity.Receipt{}, err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return newReceipt, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, req receipt.UpdateReceiptRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.receiptRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := s.loadOwnedReceipt(ctx, repo, req.ID, req.UserID)
	if err != nil {
		return err
	}

	if req.Description != nil {
		existing.Description = strings.TrimSpace(*req.Description)
	}

	if req.IssueDate != nil {
		issueDate, err := utils.ParseDate(*req.IssueDate)
		if err != nil {
			return receipt.ErrInvalidIssueDate
		}
		existing.IssueDate = issueDate
	}

	if req.TotalAmount != nil {
		existing.TotalAmount = money.Amount(*req.TotalAmount)
	}

	if req.ExtraMetadata != nil {
		existing.ExtraMetadata = *req.ExtraMetadata
	}

	oldTagID := existing.TagID
	tagChanged := false

	var newTag *entity.Tag
	if req.TagID != nil && strings.TrimSpace(*req.TagID) != oldTagID {
		tagChanged = true
		newTag, err = tagService.LoadForUser(ctx, repo.Tag, req.UserID, *req.TagID)
		if err != nil {
			return err
		}
		existing.TagID = ""
		if newTag != nil {
			existing.TagID = newTag.ID
		}
	}

	if err := repo.Receipt.Save(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update receipt")
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
		}).Error("Failed to commit receipt update")
		return err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.receiptRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := s.loadOwnedReceipt(ctx, repo, id, userID)
	if err != nil {
		return err
	}

	// Line items go first so category counts stay consistent with the rows.
	items, err := repo.Item.ListByReceipt(ctx, existing.ID)
	if err != nil {
		return err
	}

	if err := repo.Item.DeleteByReceipt(ctx, existing.ID); err != nil {
		return err
	}

	for _, item := range items {
		if item.CategoryID == "" {
			continue
		}
		if err := repo.Category.DecrementCount(ctx, item.CategoryID); err != nil {
			return err
		}
	}

	if err := repo.Receipt.Delete(ctx, existing.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"receipt_id": existing.ID,
			"error":      err.Error(),
		}).Error("Failed to delete receipt")
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
		}).Error("Failed to commit receipt deletion")
		return err
	}

	s.invalidateAnalytics(ctx, userID)

	return nil
}

func (s *receiptService) loadOwnedReceipt(ctx context.Context, repo receiptRepository.Client, id string, userID string) (entity.Receipt, error) {
	rec, err := repo.Receipt.FindByID(ctx, id)
	if err != nil {
		return entity.Receipt{}, err
	}
	if rec.UserID != userID {
		return entity.Receipt{}, receipt.ErrReceiptNotFound
	}
	return rec, nil
}
