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

type AccountDB struct {
	ID        sql.NullString  `db:"id"`
	Name      sql.NullString  `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Currency  sql.NullString  `db:"currency"`
	CreatedAt sql.NullTime    `db:"created_at"`
}

func (r *accountRepository) FindByID(c context.Context, id string) (entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var row AccountDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindAccountByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.Account{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Account{}, receipt.ErrAccountNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.Account{}, err
	}

	return r.makeAccount(row), nil
}

func (r *accountRepository) IsMember(c context.Context, userID string, accountID string) (bool, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"account_id": accountID,
	}

	query, args, err := sqlx.Named(queryCountMembership, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IsMember named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IsMember execution err")
		return false, err
	}

	return count > 0, nil
}

func (r *accountRepository) Create(c context.Context, account entity.Account) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         account.ID,
		"name":       account.Name,
		"balance":    account.Balance,
		"currency":   account.Currency,
		"created_at": account.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAccount, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create account")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating account")
		return err
	}

	return nil
}

func (r *accountRepository) AddMember(c context.Context, member entity.AccountMember) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":    member.UserID,
		"account_id": member.AccountID,
		"role":       member.Role,
	}

	query, args, err := sqlx.Named(queryAddAccountMember, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddMember named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddMember execution err")
		return err
	}

	return nil
}

func (r *accountRepository) ListForUser(c context.Context, userID string) ([]entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AccountDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListAccountsForUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListForUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListForUser execution err")
		return nil, err
	}

	result := make([]entity.Account, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeAccount(row))
	}

	return result, nil
}

func (r *accountRepository) makeAccount(row AccountDB) entity.Account {
	return entity.Account{
		ID:        row.ID.String,
		Name:      row.Name.String,
		Balance:   row.Balance,
		Currency:  row.Currency.String,
		CreatedAt: row.CreatedAt.Time,
	}
}
