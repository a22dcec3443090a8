package analyticsRepository

import (
	"context"
	"time"

	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type categoryTotalDB struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

type donutRowDB struct {
	Category  string          `db:"category"`
	Tag       string          `db:"tag"`
	IssueDate time.Time       `db:"issue_date"`
	Amount    decimal.Decimal `db:"amount"`
}

func (r *analyticsRepository) SumIncomes(c context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return r.sumInRange(c, querySumIncomes, userID, from, to)
}

func (r *analyticsRepository) SumExpenses(c context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	return r.sumInRange(c, querySumExpenses, userID, from, to)
}

func (r *analyticsRepository) sumInRange(c context.Context, namedQuery string, userID string, from, to time.Time) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("sumInRange named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	var total decimal.Decimal
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("sumInRange execution err")
		return decimal.Zero, err
	}

	return total, nil
}

func (r *analyticsRepository) ExpenseTotalsByCategory(c context.Context, userID string, from, to time.Time) ([]CategoryTotal, error) {
	return r.totals(c, queryExpenseTotalsByCategory, userID, from, to)
}

func (r *analyticsRepository) IncomeTotalsByTag(c context.Context, userID string, from, to time.Time) ([]CategoryTotal, error) {
	return r.totals(c, queryIncomeTotalsByTag, userID, from, to)
}

func (r *analyticsRepository) totals(c context.Context, namedQuery string, userID string, from, to time.Time) ([]CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []categoryTotalDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"from":    from,
		"to":      to,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("totals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("totals execution err")
		return nil, err
	}

	result := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		result = append(result, CategoryTotal{Category: row.Category, Total: row.Total})
	}

	return result, nil
}

func (r *analyticsRepository) DonutRows(c context.Context, userID string, accountID string, from, to time.Time) ([]DonutRow, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []donutRowDB

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"account_id": accountID,
		"from":       from,
		"to":         to,
	}

	query, args, err := sqlx.Named(queryDonutRows, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DonutRows named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DonutRows execution err")
		return nil, err
	}

	result := make([]DonutRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, DonutRow{
			Category:  row.Category,
			Tag:       row.Tag,
			IssueDate: row.IssueDate,
			Amount:    row.Amount,
		})
	}

	return result, nil
}
