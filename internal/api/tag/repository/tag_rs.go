package tagRepository

import (
	"context"
	"database/sql"
	"errors"

	"FinanceGolang/internal/api/tag"
	"FinanceGolang/internal/entity"
	contextPkg "FinanceGolang/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TagDB struct {
	ID      sql.NullString `db:"id"`
	UserID  sql.NullString `db:"user_id"`
	Name    sql.NullString `db:"name"`
	Type    sql.NullString `db:"type"`
	Counter int            `db:"counter"`
}

func (r *tagRepository) FindByID(c context.Context, id string) (entity.Tag, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TagDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryFindTagByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID named query preparation err")
		return entity.Tag{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Tag{}, tag.ErrTagNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByID execution err")
		return entity.Tag{}, err
	}

	return r.makeTag(row), nil
}

func (r *tagRepository) FindByUserAndName(c context.Context, userID string, name string) (entity.Tag, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TagDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"name":    name,
	}

	query, args, err := sqlx.Named(queryFindTagByUserAndName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByUserAndName named query preparation err")
		return entity.Tag{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Tag{}, tag.ErrTagNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindByUserAndName execution err")
		return entity.Tag{}, err
	}

	return r.makeTag(row), nil
}

func (r *tagRepository) Create(c context.Context, t entity.Tag) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      t.ID,
		"user_id": t.UserID,
		"name":    t.Name,
		"type":    nullableType(t.Type),
		"counter": t.Counter,
	}

	query, args, err := sqlx.Named(queryCreateTag, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create tag")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating tag")
		return err
	}

	return nil
}

func (r *tagRepository) Save(c context.Context, t entity.Tag) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      t.ID,
		"name":    t.Name,
		"type":    nullableType(t.Type),
		"counter": t.Counter,
	}

	query, args, err := sqlx.Named(querySaveTag, argsKV)
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
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"tag_id":     t.ID,
		}).Warn("Save no rows affected")
		return tag.ErrTagNotFound
	}

	return nil
}

func (r *tagRepository) ListByUserAndType(c context.Context, userID string, tagType entity.TagType) ([]entity.Tag, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TagDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"type":    string(tagType),
	}

	query, args, err := sqlx.Named(queryListTagsByUserAndType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUserAndType named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUserAndType execution err")
		return nil, err
	}

	result := make([]entity.Tag, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTag(row))
	}

	return result, nil
}

func (r *tagRepository) CountIncomeRefs(c context.Context, tagID string) (int, error) {
	return r.countRefs(c, queryCountIncomeRefs, tagID)
}

func (r *tagRepository) CountReceiptRefs(c context.Context, tagID string) (int, error) {
	return r.countRefs(c, queryCountReceiptRefs, tagID)
}

func (r *tagRepository) countRefs(c context.Context, namedQuery string, tagID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"tag_id": tagID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countRefs named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countRefs execution err")
		return 0, err
	}

	return count, nil
}

func (r *tagRepository) DetachFromIncomes(c context.Context, tagID string) error {
	return r.detach(c, queryDetachTagFromIncomes, tagID)
}

func (r *tagRepository) DetachFromReceipts(c context.Context, tagID string) error {
	return r.detach(c, queryDetachTagFromReceipts, tagID)
}

func (r *tagRepository) detach(c context.Context, namedQuery string, tagID string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"tag_id": tagID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("detach named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("detach execution err")
		return err
	}

	return nil
}

func (r *tagRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTag, argsKV)
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
		return tag.ErrTagNotFound
	}

	return nil
}

func nullableType(t entity.TagType) sql.NullString {
	if t == entity.TagTypeNone {
		return sql.NullString{}
	}
	return sql.NullString{String: string(t), Valid: true}
}

func (r *tagRepository) makeTag(row TagDB) entity.Tag {
	return entity.Tag{
		ID:      row.ID.String,
		UserID:  row.UserID.String,
		Name:    row.Name.String,
		Type:    entity.TagType(row.Type.String),
		Counter: row.Counter,
	}
}
