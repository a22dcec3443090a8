package receiptRepository

import (
	"context"
	"database/sql"
	"errors"

	"FinanceGolang/internal/api/receipt"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ItemDB struct {
	ID            sql.NullString  `db:"id"`
	ReceiptID     sql.NullString  `db:"receipt_id"`
	UserID        sql.NullString  `db:"user_id"`
	CategoryID    sql.NullString  `db:"category_id"`
	Name          sql.NullString  `db:"name"`
	Quantity      decimal.Decimal `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	ExtraMetadata sql.NullString  `db:"extra_metadata"`
}

func (r *itemRepository) FindByID(c context.Context, id string) (entity.ReceiptItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ItemDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindItemByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.ReceiptItem{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ReceiptItem{}, receipt.ErrItemNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.ReceiptItem{}, err
	}

	return r.makeItem(row), nil
}

func (r *itemRepository) ListByReceipt(c context.Context, receiptID string) ([]entity.ReceiptItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ItemDB

	argsKV := map[string]interface{}{
		"receipt_id": receiptID,
	}

	query, args, err := sqlx.Named(queryListItemsByReceipt, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByReceipt named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByReceipt execution err")
		return nil, err
	}

	result := make([]entity.ReceiptItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeItem(row))
	}

	return result, nil
}

func (r *itemRepository) Create(c context.Context, item entity.ReceiptItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             item.ID,
		"receipt_id":     item.ReceiptID,
		"user_id":        item.UserID,
		"category_id":    nullable(item.CategoryID),
		"name":           item.Name,
		"quantity":       item.Quantity,
		"unit_price":     item.UnitPrice,
		"total_price":    item.TotalPrice,
		"extra_metadata": nullable(item.ExtraMetadata),
	}

	query, args, err := sqlx.Named(queryCreateItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create item")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating item")
		return err
	}

	return nil
}

func (r *itemRepository) Save(c context.Context, item entity.ReceiptItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             item.ID,
		"category_id":    nullable(item.CategoryID),
		"name":           item.Name,
		"quantity":       item.Quantity,
		"unit_price":     item.UnitPrice,
		"total_price":    item.TotalPrice,
		"extra_metadata": nullable(item.ExtraMetadata),
	}

	query, args, err := sqlx.Named(querySaveItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Save named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Save execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return receipt.ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return receipt.ErrItemNotFound
	}

	return nil
}

func (r *itemRepository) DeleteByReceipt(c context.Context, receiptID string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"receipt_id": receiptID,
	}

	query, args, err := sqlx.Named(queryDeleteItemsByReceipt, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByReceipt named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByReceipt execution err")
		return err
	}

	return nil
}

func (r *itemRepository) makeItem(row ItemDB) entity.ReceiptItem {
	return entity.ReceiptItem{
		ID:            row.ID.String,
		ReceiptID:     row.ReceiptID.String,
		UserID:        row.UserID.String,
		CategoryID:    row.CategoryID.String,
		Name:          row.Name.String,
		Quantity:      row.Quantity,
		UnitPrice:     row.UnitPrice,
		TotalPrice:    row.TotalPrice,
		ExtraMetadata: row.ExtraMetadata.String,
	}
}
