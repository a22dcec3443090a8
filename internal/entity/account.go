package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Currency  string          `db:"currency"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountMember links a user to an account. A (user, account) pair is unique.
type AccountMember struct {
	UserID    string `db:"user_id"`
	AccountID string `db:"account_id"`
	Role      string `db:"role"`
}
