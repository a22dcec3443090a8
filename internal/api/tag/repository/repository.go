package tagRepository

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

// Querier is the per-transaction view of tag storage. Sibling domains
// (incomes, receipts) embed a Querier built on their own transaction so tag
// counter transitions commit or roll back with the owning record.
type Querier interface {
	FindByID(ctx context.Context, id string) (entity.Tag, error)
	FindByUserAndName(ctx context.Context, userID string, name string) (entity.Tag, error)
	Create(ctx context.Context, tag entity.Tag) error
	Save(ctx context.Context, tag entity.Tag) error
	ListByUserAndType(ctx context.Context, userID string, tagType entity.TagType) ([]entity.Tag, error)
	CountIncomeRefs(ctx context.Context, tagID string) (int, error)
	CountReceiptRefs(ctx context.Context, tagID string) (int, error)
	DetachFromIncomes(ctx context.Context, tagID string) error
	DetachFromReceipts(ctx context.Context, tagID string) error
	Delete(ctx context.Context, id string) error
}

// NewQuerier builds a tag Querier on top of an arbitrary executor, typically
// another domain's open transaction.
func NewQuerier(q SQLExecutor, log *logrus.Logger) Querier {
	return &tagRepository{q: q, log: log}
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
		Tag:      &tagRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Tag Querier

	Commit   func() error
	Rollback func() error
}

type tagRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
