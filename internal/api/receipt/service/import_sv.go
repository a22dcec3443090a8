package receiptService

import (
	"errors"
	"time"

	"FinanceGolang/internal/api/receipt"
	tagService "FinanceGolang/internal/api/tag/service"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"
	"FinanceGolang/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Issue dates come from the registry as "DD.MM.YYYY HH:MM:SS".
const ekasaDateLayout = "02.01.2006 15:04:05"

// ImportReceipt pulls a receipt from the eKasa registry and persists it as
// one Receipt plus its line items in a single transaction. The seller's
// organization name becomes a tag, created on first sight.
func (s *receiptService) ImportReceipt(ctx context.Context, req receipt.ImportReceiptRequest) (receipt.ImportReceiptResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	data, err := s.ekasa.FetchReceipt(ctx, req.ReceiptID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"receipt_id": req.ReceiptID,
			"error":      err.Error(),
		}).Warn("eKasa lookup failed")
		return receipt.ImportReceiptResponse{}, receipt.ErrExternalFetchFailed
	}

	issueDate, err := time.Parse(ekasaDateLayout, data.IssueDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"issue_date": data.IssueDate,
		}).Warn("Unparseable issue date in eKasa payload")
		return receipt.ImportReceiptResponse{}, receipt.ErrExternalFetchFailed
	}

	repo, err := s.receiptRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return receipt.ImportReceiptResponse{}, err
	}
	defer repo.Rollback()

	if _, err := repo.Receipt.FindByExternalUID(ctx, req.UserID, data.ReceiptID); err == nil {
		return receipt.ImportReceiptResponse{}, receipt.ErrAlreadyImported
	} else if !errors.Is(err, receipt.ErrReceiptNotFound) {
		return receipt.ImportReceiptResponse{}, err
	}

	account, err := repo.Account.FindByID(ctx, req.AccountID)
	if err != nil {
		return receipt.ImportReceiptResponse{}, err
	}

	member, err := repo.Account.IsMember(ctx, req.UserID, account.ID)
	if err != nil {
		return receipt.ImportReceiptResponse{}, err
	}
	if !member {
		return receipt.ImportReceiptResponse{}, receipt.ErrNotAccountMember
	}

	tag, err := tagService.FindOrCreateFromExternal(ctx, repo.Tag, req.UserID, data.Organization.Name)
	if err != nil {
		return receipt.ImportReceiptResponse{}, err
	}

	newReceipt := entity.Receipt{
		ID:          uuid.NewString(),
		ExternalUID: data.ReceiptID,
		UserID:      req.UserID,
		AccountID:   account.ID,
		Description: data.Organization.Name,
		IssueDate:   issueDate,
		Currency:    account.Currency,
		TotalAmount: money.Amount(decimal.NewFromFloat(data.TotalPrice)),
		CreatedAt:   time.Now(),
	}
	if tag != nil {
		newReceipt.TagID = tag.ID
	}

	if err := repo.Receipt.Create(ctx, newReceipt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create imported receipt")
		return receipt.ImportReceiptResponse{}, err
	}

	for _, item := range data.Items {
		quantity := money.Quantity(decimal.NewFromFloat(item.Quantity))
		unitPrice := money.Amount(decimal.NewFromFloat(item.Price))

		newItem := entity.ReceiptItem{
			ID:         uuid.NewString(),
			ReceiptID:  newReceipt.ID,
			UserID:     req.UserID,
			Name:       item.Name,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalPrice: money.Total(quantity, unitPrice),
		}

		if err := repo.Item.Create(ctx, newItem); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create imported receipt item")
			return receipt.ImportReceiptResponse{}, err
		}
	}

	if err := tagService.RegisterAssigned(ctx, repo.Tag, tag); err != nil {
		return receipt.ImportReceiptResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit receipt import")
		return receipt.ImportReceiptResponse{}, err
	}

	s.invalidateAnalytics(ctx, req.UserID)

	resp := receipt.ImportReceiptResponse{
		Message:    "Receipt imported successfully",
		ReceiptID:  newReceipt.ID,
		TotalItems: len(data.Items),
	}
	if tag != nil {
		resp.Tag = tag.Name
		resp.TagID = tag.ID
	}

	return resp, nil
}
