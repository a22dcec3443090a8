package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID            string          `db:"id"`
	ExternalUID   string          `db:"external_uid"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	TagID         string          `db:"tag_id"`
	Description   string          `db:"description"`
	IssueDate     time.Time       `db:"issue_date"`
	Currency      string          `db:"currency"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	ExtraMetadata string          `db:"extra_metadata"`
	CreatedAt     time.Time       `db:"created_at"`
}

// ReceiptItem is a single line on a receipt. TotalPrice is always recomputed
// from quantity and unit price on the server; client-supplied totals are
// ignored.
type ReceiptItem struct {
	ID            string          `db:"id"`
	ReceiptID     string          `db:"receipt_id"`
	UserID        string          `db:"user_id"`
	CategoryID    string          `db:"category_id"`
	Name          string          `db:"name"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	ExtraMetadata string          `db:"extra_metadata"`
}
