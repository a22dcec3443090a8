package authRepository

import (
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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
		}).Error("Failed to build SQL query for AddMember")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when adding account member")
		return err
	}

	return nil
}
