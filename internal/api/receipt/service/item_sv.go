package receiptService

import (
	"strings"

	categoryService "FinanceGolang/internal/api/category/service"
	"FinanceGolang/internal/api/receipt"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/money"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *receiptService) CreateItem(ctx context.Context, req receipt.CreateReceiptItemRequest) (entity.ReceiptItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return entity.ReceiptItem{}, receipt.ErrEmptyItemName
	}
	if req.Quantity.IsNegative() {
		return entity.ReceiptItem{}, receipt.ErrInvalidQuantity
	}

	repo, err := s.receiptRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.ReceiptItem{}, err
	}
	defer repo.Rollback()

	rec, err := s.loadOwnedReceipt(ctx, repo, req.ReceiptID, req.UserID)
	if err != nil {
		return entity.ReceiptItem{}, err
	}

	category, err := categoryService.LoadForUser(ctx, repo.Category, req.UserID, req.CategoryID)
	if err != nil {
		return entity.ReceiptItem{}, err
	}

	quantity := money.Quantity(req.Quantity)
	unitPrice := money.Amount(req.UnitPrice)

	newItem := entity.ReceiptItem{
		ID:            uuid.NewString(),
		ReceiptID:     rec.ID,
		UserID:        rec.UserID,
		Name:          name,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    money.Total(quantity, unitPrice),
		ExtraMetadata: req.ExtraMetadata,
	}
	if category != nil {
		newItem.CategoryID = category.ID
	}

	if err := repo.Item.Create(ctx, newItem); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create receipt item")
		return entity.ReceiptItem{}, err
	}

	if err := categoryService.RegisterUsed(ctx, repo.Category, newItem.CategoryID); err != nil {
		return entity.ReceiptItem{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit item creation")
		return entity.ReceiptItem{}, err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return newItem, nil
}

func (s *receiptService) UpdateItem(ctx context.Context, req receipt.UpdateReceiptItemRequest) error {
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

	if _, err := s.loadOwnedReceipt(ctx, repo, req.ReceiptID, req.UserID); err != nil {
		return err
	}

	existing, err := repo.Item.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.ReceiptID != req.ReceiptID {
		return receipt.ErrItemNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return receipt.ErrEmptyItemName
		}
		existing.Name = name
	}

	if req.Quantity != nil {
		if req.Quantity.IsNegative() {
			return receipt.ErrInvalidQuantity
		}
		existing.Quantity = money.Quantity(*req.Quantity)
	}

	if req.UnitPrice != nil {
		existing.UnitPrice = money.Amount(*req.UnitPrice)
	}

	if req.ExtraMetadata != nil {
		existing.ExtraMetadata = *req.ExtraMetadata
	}

	oldCategoryID := existing.CategoryID
	categoryChanged := false

	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != oldCategoryID {
		categoryChanged = true
		category, err := categoryService.LoadForUser(ctx, repo.Category, req.UserID, *req.CategoryID)
		if err != nil {
			return err
		}
		existing.CategoryID = ""
		if category != nil {
			existing.CategoryID = category.ID
		}
	}

	// The stored total is never trusted from the caller.
	existing.TotalPrice = money.Total(existing.Quantity, existing.UnitPrice)

	if err := repo.Item.Save(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update receipt item")
		return err
	}

	if categoryChanged {
		if err := categoryService.RegisterUnused(ctx, repo.Category, oldCategoryID); err != nil {
			return err
		}
		if err := categoryService.RegisterUsed(ctx, repo.Category, existing.CategoryID); err != nil {
			return err
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit item update")
		return err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	return nil
}

func (s *receiptService) DeleteItem(ctx context.Context, itemID string, receiptID string, userID string) error {
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

	if _, err := s.loadOwnedReceipt(ctx, repo, receiptID, userID); err != nil {
		return err
	}

	existing, err := repo.Item.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing.ReceiptID != receiptID {
		return receipt.ErrItemNotFound
	}

	if err := repo.Item.Delete(ctx, existing.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"item_id":    existing.ID,
			"error":      err.Error(),
		}).Error("Failed to delete receipt item")
		return err
	}

	if err := categoryService.RegisterUnused(ctx, repo.Category, existing.CategoryID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit item deletion")
		return err
	}

	s.invalidateAnalytics(ctx, userID)

	return nil
}
