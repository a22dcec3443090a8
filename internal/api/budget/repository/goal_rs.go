package budgetRepository

import (
	"context"
	"database/sql"
	"errors"

	"FinanceGolang/internal/api/budget"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GoalDB struct {
	ID           sql.NullString  `db:"id"`
	UserID       sql.NullString  `db:"user_id"`
	Name         sql.NullString  `db:"name"`
	Type         sql.NullString  `db:"type"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Section      sql.NullString  `db:"section"`
	MonthFrom    sql.NullString  `db:"month_from"`
	MonthTo      sql.NullString  `db:"month_to"`
	IsDone       bool            `db:"is_done"`
	CreatedAt    sql.NullTime    `db:"created_at"`
}

func (r *goalRepository) FindByID(c context.Context, id string) (entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var row GoalDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindGoalByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.Goal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Goal{}, budget.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.Goal{}, err
	}

	return r.makeGoal(row), nil
}

func (r *goalRepository) ListByUser(c context.Context, userID string) ([]entity.Goal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []GoalDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListGoalsByUser, argsKV)
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

	result := make([]entity.Goal, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeGoal(row))
	}

	return result, nil
}

func (r *goalRepository) Create(c context.Context, goal entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            goal.ID,
		"user_id":       goal.UserID,
		"name":          goal.Name,
		"type":          string(goal.Type),
		"target_amount": goal.TargetAmount,
		"section":       nullable(string(goal.Section)),
		"month_from":    nullable(goal.MonthFrom),
		"month_to":      nullable(goal.MonthTo),
		"is_done":       goal.IsDone,
		"created_at":    goal.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create goal")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating goal")
		return err
	}

	return nil
}

func (r *goalRepository) Save(c context.Context, goal entity.Goal) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            goal.ID,
		"name":          goal.Name,
		"target_amount": goal.TargetAmount,
		"section":       nullable(string(goal.Section)),
		"month_from":    nullable(goal.MonthFrom),
		"month_to":      nullable(goal.MonthTo),
		"is_done":       goal.IsDone,
	}

	query, args, err := sqlx.Named(querySaveGoal, argsKV)
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
		return budget.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteGoal, argsKV)
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
		return budget.ErrGoalNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *goalRepository) makeGoal(row GoalDB) entity.Goal {
	return entity.Goal{
		ID:           row.ID.String,
		UserID:       row.UserID.String,
		Name:         row.Name.String,
		Type:         entity.GoalType(row.Type.String),
		TargetAmount: row.TargetAmount,
		Section:      entity.Section(row.Section.String),
		MonthFrom:    row.MonthFrom.String,
		MonthTo:      row.MonthTo.String,
		IsDone:       row.IsDone,
		CreatedAt:    row.CreatedAt.Time,
	}
}
