package incomeRepository

import (
	tagRepository "FinanceGolang/internal/api/tag/repository"
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
	FindByID(ctx context.Context, id string) (entity.Income, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Income, error)
	Create(ctx context.Context, income entity.Income) error
	Save(ctx context.Context, income entity.Income) error
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

// NewClient opens a client over the pool or a fresh transaction. The tag
// Querier rides the same executor so counter transitions stay atomic with the
// income mutation.
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
		Income:   &incomeRepository{q: sqlExecutor, log: r.log},
		Tag:      tagRepository.NewQuerier(sqlExecutor, r.log),
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Income Querier
	Tag    tagRepository.Querier

	Commit   func() error
	Rollback func() error
}

type incomeRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
