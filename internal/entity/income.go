package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Income struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	TagID         string          `db:"tag_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	IncomeDate    time.Time       `db:"income_date"`
	ExtraMetadata string          `db:"extra_metadata"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
