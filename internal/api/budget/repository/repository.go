package budgetRepository

import (
	"FinanceGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type Querier interface {
	ListByMonth(ctx context.Context, month string) ([]entity.MonthlyBudget, error)
	Seed(ctx context.Context, budget entity.MonthlyBudget) error
	Upsert(ctx context.Context, budget entity.MonthlyBudget) error
}

type GoalQuerier interface {
	FindByID(ctx context.Context, id string) (entity.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Goal, error)
	Create(ctx context.Context, goal entity.Goal) error
	Save(ctx context.Context, goal entity.Goal) error
	Delete(ctx context.Context, id string) error
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Budget:   &budgetRepository{q: sqlExecutor, log: r.log},
		Goal:     &goalRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Budget Querier
	Goal   GoalQuerier

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type goalRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
