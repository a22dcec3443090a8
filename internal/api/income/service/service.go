package incomeService

import (
	"FinanceGolang/internal/api/income"
	incomeRepository "FinanceGolang/internal/api/income/repository"
	"FinanceGolang/internal/entity"
	redisPkg "FinanceGolang/pkg/redis"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IIncomeService interface {
	GetIncomes(ctx context.Context, userID string) ([]entity.Income, error)
	GetIncomeByID(ctx context.Context, id string, userID string) (entity.Income, error)
	CreateIncome(ctx context.Context, req income.CreateIncomeRequest) (entity.Income, error)
	UpdateIncome(ctx context.Context, req income.UpdateIncomeRequest) error
	DeleteIncome(ctx context.Context, id string, userID string) error
}

type incomeService struct {
	log              *logrus.Logger
	incomeRepository incomeRepository.Repository
	redis            redisPkg.IRedis
}

func NewIncomeService(log *logrus.Logger, ir incomeRepository.Repository, redis redisPkg.IRedis) IIncomeService {
	return &incomeService{
		log:              log,
		incomeRepository: ir,
		redis:            redis,
	}
}

// invalidateAnalytics drops cached aggregation payloads after a committed
// mutation. Cache errors are logged, never surfaced.
func (s *incomeService) invalidateAnalytics(ctx context.Context, userID string) {
	if err := s.redis.InvalidatePrefix(ctx, "analytics:"+userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Failed to invalidate analytics cache")
	}
}
