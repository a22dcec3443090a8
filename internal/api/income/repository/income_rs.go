package incomeRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"FinanceGolang/internal/api/income"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type IncomeDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	TagID         sql.NullString  `db:"tag_id"`
	Description   sql.NullString  `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	IncomeDate    sql.NullTime    `db:"income_date"`
	ExtraMetadata sql.NullString  `db:"extra_metadata"`
	CreatedAt     sql.NullTime    `db:"created_at"`
	UpdatedAt     sql.NullTime    `db:"updated_at"`
}

func (r *incomeRepository) FindByID(c context.Context, id string) (entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var row IncomeDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindIncomeByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.Income{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Income{}, income.ErrIncomeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.Income{}, err
	}

	return r.makeIncome(row), nil
}

func (r *incomeRepository) ListByUser(c context.Context, userID string) ([]entity.Income, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []IncomeDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListIncomesByUser, argsKV)
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

	result := make([]entity.Income, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeIncome(row))
	}

	return result, nil
}

func (r *incomeRepository) Create(c context.Context, in entity.Income) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             in.ID,
		"user_id":        in.UserID,
		"tag_id":         nullable(in.TagID),
		"description":    in.Description,
		"amount":         in.Amount,
		"income_date":    in.IncomeDate,
		"extra_metadata": nullable(in.ExtraMetadata),
		"created_at":     in.CreatedAt,
		"updated_at":     in.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateIncome, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create income")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating income")
		return err
	}

	return nil
}

func (r *incomeRepository) Save(c context.Context, in entity.Income) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             in.ID,
		"tag_id":         nullable(in.TagID),
		"description":    in.Description,
		"amount":         in.Amount,
		"income_date":    in.IncomeDate,
		"extra_metadata": nullable(in.ExtraMetadata),
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(querySaveIncome, argsKV)
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
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteIncome, argsKV)
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
		return income.ErrIncomeNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *incomeRepository) makeIncome(row IncomeDB) entity.Income {
	return entity.Income{
		ID:            row.ID.String,
		UserID:        row.UserID.String,
		TagID:         row.TagID.String,
		Description:   row.Description.String,
		Amount:        row.Amount,
		IncomeDate:    row.IncomeDate.Time,
		ExtraMetadata: row.ExtraMetadata.String,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
