package receiptService

import (
	"FinanceGolang/internal/api/receipt"
	receiptRepository "FinanceGolang/internal/api/receipt/repository"
	"FinanceGolang/internal/entity"
	"FinanceGolang/pkg/ekasa"
	redisPkg "FinanceGolang/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReceiptService interface {
	GetReceipts(ctx context.Context, userID string) ([]entity.Receipt, error)
	GetReceiptByID(ctx context.Context, id string, userID string) (entity.Receipt, []entity.ReceiptItem, error)
	CreateReceipt(ctx context.Context, req receipt.CreateReceiptRequest) (entity.Receipt, error)
	UpdateReceipt(ctx context.Context, req receipt.UpdateReceiptRequest) error
	DeleteReceipt(ctx context.Context, id string, userID string) error

	CreateItem(ctx context.Context, req receipt.CreateReceiptItemRequest) (entity.ReceiptItem, error)
	UpdateItem(ctx context.Context, req receipt.UpdateReceiptItemRequest) error
	DeleteItem(ctx context.Context, itemID string, receiptID string, userID string) error

	ImportReceipt(ctx context.Context, req receipt.ImportReceiptRequest) (receipt.ImportReceiptResponse, error)
}

type receiptService struct {
	log               *logrus.Logger
	receiptRepository receiptRepository.Repository
	ekasa             ekasa.ItfEkasa
	redis             redisPkg.IRedis
}

func NewReceiptService(
	log *logrus.Logger,
	rr receiptRepository.Repository,
	ekasaClient ekasa.ItfEkasa,
	redis redisPkg.IRedis,
) IReceiptService {
	return &receiptService{
		log:               log,
		receiptRepository: rr,
		ekasa:             ekasaClient,
		redis:             redis,
	}
}

func (s *receiptService) invalidateAnalytics(ctx context.Context, userID string) {
	if err := s.redis.InvalidatePrefix(ctx, "analytics:"+userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Failed to invalidate analytics cache")
	}
}
