package receiptRepository

import (
	categoryRepository "FinanceGolang/internal/api/category/repository"
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
	FindByID(ctx context.Context, id string) (entity.Receipt, error)
	FindByExternalUID(ctx context.Context, userID string, externalUID string) (entity.Receipt, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Receipt, error)
	Create(ctx context.Context, receipt entity.Receipt) error
	Save(ctx context.Context, receipt entity.Receipt) error
	Delete(ctx context.Context, id string) error
}

type ItemQuerier interface {
	FindByID(ctx context.Context, id string) (entity.ReceiptItem, error)
	ListByReceipt(ctx context.Context, receiptID string) ([]entity.ReceiptItem, error)
	Create(ctx context.Context, item entity.ReceiptItem) error
	Save(ctx context.Context, item entity.ReceiptItem) error
	Delete(ctx context.Context, id string) error
	DeleteByReceipt(ctx context.Context, receiptID string) error
}

type AccountQuerier interface {
	FindByID(ctx context.Context, id string) (entity.Account, error)
	IsMember(ctx context.Context, userID string, accountID string) (bool, error)
	Create(ctx context.Context, account entity.Account) error
	AddMember(ctx context.Context, member entity.AccountMember) error
	ListForUser(ctx context.Context, userID string) ([]entity.Account, error)
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

// NewClient opens a client over the pool or a fresh transaction. Tag and
// category Queriers ride the same executor so counter transitions stay atomic
// with the receipt mutation.
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
		Receipt:  &receiptRepository{q: sqlExecutor, log: r.log},
		Item:     &itemRepository{q: sqlExecutor, log: r.log},
		Account:  &accountRepository{q: sqlExecutor, log: r.log},
		Tag:      tagRepository.NewQuerier(sqlExecutor, r.log),
		Category: categoryRepository.NewQuerier(sqlExecutor, r.log),
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Receipt  Querier
	Item     ItemQuerier
	Account  AccountQuerier
	Tag      tagRepository.Querier
	Category categoryRepository.Querier

	Commit   func() error
	Rollback func() error
}

type receiptRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type itemRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type accountRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
