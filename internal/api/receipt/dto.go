package receipt

import "github.com/shopspring/decimal"

type CreateReceiptRequest struct {
	UserID        string          `json:"user_id" validate:"required,uuid4"`
	AccountID     string          `json:"account_id" validate:"required,uuid4"`
	TagID         string          `json:"tag_id"`
	Description   string          `json:"description"`
	IssueDate     string          `json:"issue_date" validate:"required"`
	Currency      string          `json:"currency"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ExtraMetadata string          `json:"extra_metadata"`
}

type UpdateReceiptRequest struct {
	ID            string           `json:"id" validate:"required,uuid4"`
	UserID        string           `json:"user_id" validate:"required,uuid4"`
	TagID         *string          `json:"tag_id"`
	Description   *string          `json:"description"`
	IssueDate     *string          `json:"issue_date"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	ExtraMetadata *string          `json:"extra_metadata"`
}

type CreateReceiptItemRequest struct {
	ReceiptID     string          `json:"receipt_id" validate:"required,uuid4"`
	UserID        string          `json:"user_id" validate:"required,uuid4"`
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ExtraMetadata string          `json:"extra_metadata"`
}

type UpdateReceiptItemRequest struct {
	ID            string           `json:"id" validate:"required,uuid4"`
	ReceiptID     string           `json:"receipt_id" validate:"required,uuid4"`
	UserID        string           `json:"user_id" validate:"required,uuid4"`
	CategoryID    *string          `json:"category_id"`
	Name          *string          `json:"name"`
	Quantity      *decimal.Decimal `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	ExtraMetadata *string          `json:"extra_metadata"`
}

type ImportReceiptRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	AccountID string `json:"account_id" validate:"required,uuid4"`
	ReceiptID string `json:"receipt_id" validate:"required"`
}

type ReceiptItemResponse struct {
	ID            string  `json:"id"`
	ReceiptID     string  `json:"receipt_id"`
	CategoryID    string  `json:"category_id,omitempty"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	ExtraMetadata string  `json:"extra_metadata,omitempty"`
}

type ReceiptResponse struct {
	ID            string                `json:"id"`
	ExternalUID   string                `json:"external_uid,omitempty"`
	UserID        string                `json:"user_id"`
	AccountID     string                `json:"account_id"`
	TagID         string                `json:"tag_id,omitempty"`
	Description   string                `json:"description"`
	IssueDate     string                `json:"issue_date"`
	Currency      string                `json:"currency"`
	TotalAmount   float64               `json:"total_amount"`
	ExtraMetadata string                `json:"extra_metadata,omitempty"`
	CreatedAt     string                `json:"created_at"`
	Items         []ReceiptItemResponse `json:"items,omitempty"`
}

type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Count    int               `json:"count"`
}

type ImportReceiptResponse struct {
	Message    string `json:"message"`
	Tag        string `json:"tag,omitempty"`
	TagID      string `json:"tag_id,omitempty"`
	ReceiptID  string `json:"receipt_id"`
	TotalItems int    `json:"total_items"`
}
