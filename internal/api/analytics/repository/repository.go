package analyticsRepository

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

// CategoryTotal is one aggregation bucket keyed by a raw category name.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DonutRow is one receipt item joined with its category, tag and issue date.
// Absent categories and tags carry their placeholder labels already.
type DonutRow struct {
	Category  string
	Tag       string
	IssueDate time.Time
	Amount    decimal.Decimal
}

// Querier is the read-only aggregation surface. All ranges are half-open
// [from, to).
type Querier interface {
	SumIncomes(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
	SumExpenses(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
	ExpenseTotalsByCategory(ctx context.Context, userID string, from, to time.Time) ([]CategoryTotal, error)
	IncomeTotalsByTag(ctx context.Context, userID string, from, to time.Time) ([]CategoryTotal, error)
	DonutRows(ctx context.Context, userID string, accountID string, from, to time.Time) ([]DonutRow, error)
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
	NewClient() (Client, error)
}

// NewClient never opens a transaction; aggregation reads are not required to
// observe a single snapshot.
func (r *repository) NewClient() (Client, error) {
	return Client{
		Agg: &analyticsRepository{q: r.DB, log: r.log},
	}, nil
}

type Client struct {
	Agg Querier
}

type analyticsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
