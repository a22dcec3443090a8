package budgetRepository

import (
	"context"
	"database/sql"

	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID            sql.NullString  `db:"id"`
	Month         sql.NullString  `db:"month"`
	Section       sql.NullString  `db:"section"`
	LimitAmount   decimal.Decimal `db:"limit_amount"`
	PercentTarget decimal.Decimal `db:"percent_target"`
}

func (r *budgetRepository) ListByMonth(c context.Context, month string) ([]entity.MonthlyBudget, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []BudgetDB

	argsKV := map[string]interface{}{
		"month": month,
	}

	query, args, err := sqlx.Named(queryListBudgetsByMonth, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByMonth named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByMonth execution err")
		return nil, err
	}

	result := make([]entity.MonthlyBudget, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeBudget(row))
	}

	return result, nil
}

func (r *budgetRepository) Seed(c context.Context, budget entity.MonthlyBudget) error {
	return r.write(c, querySeedBudget, budget, "Seed")
}

func (r *budgetRepository) Upsert(c context.Context, budget entity.MonthlyBudget) error {
	return r.write(c, queryUpsertBudget, budget, "Upsert")
}

func (r *budgetRepository) write(c context.Context, namedQuery string, budget entity.MonthlyBudget, op string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":             budget.ID,
		"month":          budget.Month,
		"section":        string(budget.Section),
		"limit_amount":   budget.LimitAmount,
		"percent_target": budget.PercentTarget,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"op":         op,
		}).Error("budget write named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"op":         op,
		}).Error("budget write execution err")
		return err
	}

	return nil
}

func (r *budgetRepository) makeBudget(row BudgetDB) entity.MonthlyBudget {
	return entity.MonthlyBudget{
		ID:            row.ID.String,
		Month:         row.Month.String,
		Section:       entity.Section(row.Section.String),
		LimitAmount:   row.LimitAmount,
		PercentTarget: row.PercentTarget,
	}
}
