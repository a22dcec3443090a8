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

type ReceiptDB struct {
	ID            sql.NullString  `db:"id"`
	ExternalUID   sql.NullString  `db:"external_uid"`
	UserID        sql.NullString  `db:"user_id"`
	AccountID     sql.NullString  `db:"account_id"`
	TagID         sql.NullString  `db:"tag_id"`
	Description   sql.NullString  `db:"description"`
	IssueDate     sql.NullTime    `db:"issue_date"`
	Currency      sql.NullString  `db:"currency"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	ExtraMetadata sql.NullString  `db:"extra_metadata"`
	CreatedAt     sql.NullTime    `db:"created_at"`
}

func (r *receiptRepository) FindByID(c context.Context, id string) (entity.Receipt, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ReceiptDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindReceiptByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.Receipt{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Receipt{}, receipt.ErrReceiptNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.Receipt{}, err
	}

	return r.makeReceipt(row), nil
}

func (r *receiptRepository) FindByExternalUID(c context.Context, userID string, externalUID string) (entity.Receipt, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ReceiptDB

	argsKV := map[string]interface{}{
		"user_id":      userID,
		"external_uid": externalUID,
	}

	query, args, err := sqlx.Named(queryFindReceiptByExternalUID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByExternalUID named query preparation err")
		return entity.Receipt{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Receipt{}, receipt.ErrReceiptNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByExternalUID execution err")
		return entity.Receipt{}, err
	}

	return r.makeReceipt(row), nil
}

func (r *receiptRepository) ListByUser(c context.Context, userID string) ([]entity.Receipt, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ReceiptDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListReceiptsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser execution err")
		return nil, err
	}

	result := make([]entity.Receipt, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeReceipt(row))
	}

	return result, nil
}

func (r *receiptRepository) Create(c context.Context, rec entity.Receipt) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             rec.ID,
		"external_uid":   nullable(rec.ExternalUID),
		"user_id":        rec.UserID,
		"account_id":     rec.AccountID,
		"tag_id":         nullable(rec.TagID),
		"description":    rec.Description,
		"issue_date":     rec.IssueDate,
		"currency":       rec.Currency,
		"total_amount":   rec.TotalAmount,
		"extra_metadata": nullable(rec.ExtraMetadata),
		"created_at":     rec.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReceipt, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create receipt")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating receipt")
		return err
	}

	return nil
}

func (r *receiptRepository) Save(c context.Context, rec entity.Receipt) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             rec.ID,
		"tag_id":         nullable(rec.TagID),
		"description":    rec.Description,
		"issue_date":     rec.IssueDate,
		"total_amount":   rec.TotalAmount,
		"extra_metadata": nullable(rec.ExtraMetadata),
	}

	query, args, err := sqlx.Named(querySaveReceipt, argsKV)
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
		return receipt.ErrReceiptNotFound
	}

	return nil
}

func (r *receiptRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteReceipt, argsKV)
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
		return receipt.ErrReceiptNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *receiptRepository) makeReceipt(row ReceiptDB) entity.Receipt {
	return entity.Receipt{
		ID:            row.ID.String,
		ExternalUID:   row.ExternalUID.String,
		UserID:        row.UserID.String,
		AccountID:     row.AccountID.String,
		TagID:         row.TagID.String,
		Description:   row.Description.String,
		IssueDate:     row.IssueDate.Time,
		Currency:      row.Currency.String,
		TotalAmount:   row.TotalAmount,
		ExtraMetadata: row.ExtraMetadata.String,
		CreatedAt:     row.CreatedAt.Time,
	}
}
