package analyticsService

import (
	"time"

	"FinanceGolang/internal/api/analytics"
	analyticsRepository "FinanceGolang/internal/api/analytics/repository"
	redisPkg "FinanceGolang/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const cacheTTL = 5 * time.Minute

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IAnalyticsService interface {
	GetDonut(ctx context.Context, userID string, rawYear, rawMonth, accountID string) (analytics.DonutResponse, error)
	GetSummary(ctx context.Context, userID string, rawYear, rawMonth string) (analytics.SummaryResponse, error)
	GetDashboard(ctx context.Context, userID string) (analytics.DashboardResponse, error)
}

type analyticsService struct {
	log                 *logrus.Logger
	analyticsRepository analyticsRepository.Repository
	redis               redisPkg.IRedis
}

func NewAnalyticsService(log *logrus.Logger, ar analyticsRepository.Repository, redis redisPkg.IRedis) IAnalyticsService {
	return &analyticsService{
		log:                 log,
		analyticsRepository: ar,
		redis:               redis,
	}
}

// cacheGet loads a cached payload into dest. A miss or a cache error both
// report false; the caller recomputes either way.
func (s *analyticsService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	raw, found, err := s.redis.GetCached(ctx, key)
	if err != nil || !found {
		return false
	}
	if err := json.UnmarshalFromString(raw, dest); err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Failed to decode cached analytics payload")
		return false
	}
	return true
}

func (s *analyticsService) cacheSet(ctx context.Context, key string, value interface{}) {
	raw, err := json.MarshalToString(value)
	if err != nil {
		return
	}
	if err := s.redis.SetCached(ctx, key, raw, cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Failed to cache analytics payload")
	}
}
