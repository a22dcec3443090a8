package tagService

import (
	"errors"
	"strings"

	"FinanceGolang/internal/api/tag"
	tagRepository "FinanceGolang/internal/api/tag/repository"
	"FinanceGolang/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/net/context"
)

// The lifecycle helpers below are shared with the income and receipt
// services. They operate on a tag Querier bound to the caller's transaction,
// so counter and type transitions commit or roll back together with the
// record that triggered them.

// FindOrCreate looks a tag up by exact name within one user's tags and
// creates it with counter 0 and no type when absent. The inserted row is
// visible to subsequent queries on the same transaction.
func FindOrCreate(ctx context.Context, q tagRepository.Querier, userID string, name string) (entity.Tag, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return entity.Tag{}, tag.ErrEmptyTagName
	}

	existing, err := q.FindByUserAndName(ctx, userID, cleanName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, tag.ErrTagNotFound) {
		return entity.Tag{}, err
	}

	created := entity.Tag{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    cleanName,
		Type:    entity.TagTypeNone,
		Counter: 0,
	}

	if err := q.Create(ctx, created); err != nil {
		return entity.Tag{}, err
	}

	return created, nil
}

// FindOrCreateFromExternal resolves a tag from an external organization name.
// Returns nil when no name is present. The counter is not touched here; the
// caller registers the assignment once the owning receipt is persisted.
func FindOrCreateFromExternal(ctx context.Context, q tagRepository.Querier, userID string, organizationName string) (*entity.Tag, error) {
	if strings.TrimSpace(organizationName) == "" {
		return nil, nil
	}

	t, err := FindOrCreate(ctx, q, userID, organizationName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RegisterAssigned records one attachment of the tag to an income or
// receipt: counter goes up, the type is re-derived from the current
// association sets. No-op for a nil tag.
func RegisterAssigned(ctx context.Context, q tagRepository.Querier, t *entity.Tag) error {
	if t == nil {
		return nil
	}

	t.IncrementCounter()
	return refreshType(ctx, q, t)
}

// RegisterUnassigned is the inverse transition; the counter never drops
// below zero. No-op for a nil tag.
func RegisterUnassigned(ctx context.Context, q tagRepository.Querier, t *entity.Tag) error {
	if t == nil {
		return nil
	}

	t.DecrementCounter()
	return refreshType(ctx, q, t)
}

func refreshType(ctx context.Context, q tagRepository.Querier, t *entity.Tag) error {
	incomeRefs, err := q.CountIncomeRefs(ctx, t.ID)
	if err != nil {
		return err
	}

	receiptRefs, err := q.CountReceiptRefs(ctx, t.ID)
	if err != nil {
		return err
	}

	t.Type = entity.InferTagType(incomeRefs > 0, receiptRefs > 0)

	return q.Save(ctx, *t)
}

// LoadForUser resolves an optional raw tag id for a request. An empty id is
// a valid "no tag" request and yields (nil, nil). A malformed id, a missing
// tag, or a tag owned by another user yield the domain errors whose message
// strings are part of the API contract.
func LoadForUser(ctx context.Context, q tagRepository.Querier, userID string, rawTagID string) (*entity.Tag, error) {
	if strings.TrimSpace(rawTagID) == "" {
		return nil, nil
	}

	if _, err := uuid.Parse(rawTagID); err != nil {
		return nil, tag.ErrInvalidTagID
	}

	t, err := q.FindByID(ctx, rawTagID)
	if err != nil {
		return nil, err
	}

	if t.UserID != userID {
		return nil, tag.ErrTagNotOwned
	}

	return &t, nil
}
