package categoryRepository

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

// Querier is the per-transaction view of category storage. The receipt item
// service embeds one on its own transaction so usage-count transitions commit
// or roll back with the owning item.
type Querier interface {
	FindByID(ctx context.Context, id string) (entity.Category, error)
	FindByUserAndName(ctx context.Context, userID string, name string) (entity.Category, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Category, error)
	Create(ctx context.Context, category entity.Category) error
	Save(ctx context.Context, category entity.Category) error
	IncrementCount(ctx context.Context, id string) error
	DecrementCount(ctx context.Context, id string) error
	DetachFromItems(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// NewQuerier builds a category Querier on top of an arbitrary executor,
// typically another domain's open transaction.
func NewQuerier(q SQLExecutor, log *logrus.Logger) Querier {
	return &categoryRepository{q: q, log: log}
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
		Category: &categoryRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Category Querier

	Commit   func() error
	Rollback func() error
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
