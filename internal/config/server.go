package config

import (
	"fmt"
	"os"

	"FinanceGolang/database/postgres"
	analyticsHandler "FinanceGolang/internal/api/analytics/handler"
	analyticsRepository "FinanceGolang/internal/api/analytics/repository"
	analyticsService "FinanceGolang/internal/api/analytics/service"
	authHandler "FinanceGolang/internal/api/auth/handler"
	authRepository "FinanceGolang/internal/api/auth/repository"
	authService "FinanceGolang/internal/api/auth/service"
	budgetHandler "FinanceGolang/internal/api/budget/handler"
	budgetRepository "FinanceGolang/internal/api/budget/repository"
	budgetService "FinanceGolang/internal/api/budget/service"
	categoryHandler "FinanceGolang/internal/api/category/handler"
	categoryRepository "FinanceGolang/internal/api/category/repository"
	categoryService "FinanceGolang/internal/api/category/service"
	incomeHandler "FinanceGolang/internal/api/income/handler"
	incomeRepository "FinanceGolang/internal/api/income/repository"
	incomeService "FinanceGolang/internal/api/income/service"
	receiptHandler "FinanceGolang/internal/api/receipt/handler"
	receiptRepository "FinanceGolang/internal/api/receipt/repository"
	receiptService "FinanceGolang/internal/api/receipt/service"
	tagHandler "FinanceGolang/internal/api/tag/handler"
	tagRepository "FinanceGolang/internal/api/tag/repository"
	tagService "FinanceGolang/internal/api/tag/service"
	"FinanceGolang/internal/middleware"
	"FinanceGolang/pkg/bcrypt"
	"FinanceGolang/pkg/ekasa"
	"FinanceGolang/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	ekasaClient ekasa.ItfEkasa
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithEkasaClient() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before the eKasa client")
		}
		s.ekasaClient = ekasa.New(s.log)
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Tag Domain
	tagRepo := tagRepository.New(s.db, s.log)
	tagServices := tagService.NewTagService(s.log, tagRepo)
	tagHandlers := tagHandler.New(s.log, s.validator, s.middleware, tagServices)

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Income Domain
	incomeRepo := incomeRepository.New(s.db, s.log)
	incomeServices := incomeService.NewIncomeService(s.log, incomeRepo, s.redisServer)
	incomeHandlers := incomeHandler.New(s.log, s.validator, s.middleware, incomeServices)

	// Receipt Domain
	receiptRepo := receiptRepository.New(s.db, s.log)
	receiptServices := receiptService.NewReceiptService(s.log, receiptRepo, s.ekasaClient, s.redisServer)
	receiptHandlers := receiptHandler.New(s.log, s.validator, s.middleware, receiptServices)

	// Analytics Domain
	analyticsRepo := analyticsRepository.New(s.db, s.log)
	analyticsServices := analyticsService.NewAnalyticsService(s.log, analyticsRepo, s.redisServer)
	analyticsHandlers := analyticsHandler.New(s.log, s.validator, s.middleware, analyticsServices)

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, analyticsRepo)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		tagHandlers,
		categoryHandlers,
		incomeHandlers,
		receiptHandlers,
		analyticsHandlers,
		budgetHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
