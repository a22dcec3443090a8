package tagService

import (
	"testing"

	"FinanceGolang/internal/api/tag"
	tagRepository "FinanceGolang/internal/api/tag/repository"
	"FinanceGolang/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeTagQuerier struct {
	tags        map[string]entity.Tag
	incomeRefs  map[string]int
	receiptRefs map[string]int
}

func newFakeTagQuerier() *fakeTagQuerier {
	return &fakeTagQuerier{
		tags:        make(map[string]entity.Tag),
		incomeRefs:  make(map[string]int),
		receiptRefs: make(map[string]int),
	}
}

func (f *fakeTagQuerier) FindByID(_ context.Context, id string) (entity.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return entity.Tag{}, tag.ErrTagNotFound
	}
	return t, nil
}

func (f *fakeTagQuerier) FindByUserAndName(_ context.Context, userID string, name string) (entity.Tag, error) {
	for _, t := range f.tags {
		if t.UserID == userID && t.Name == name {
			return t, nil
		}
	}
	return entity.Tag{}, tag.ErrTagNotFound
}

func (f *fakeTagQuerier) Create(_ context.Context, t entity.Tag) error {
	f.tags[t.ID] = t
	return nil
}

func (f *fakeTagQuerier) Save(_ context.Context, t entity.Tag) error {
	if _, ok := f.tags[t.ID]; !ok {
		return tag.ErrTagNotFound
	}
	f.tags[t.ID] = t
	return nil
}

func (f *fakeTagQuerier) ListByUserAndType(_ context.Context, userID string, tagType entity.TagType) ([]entity.Tag, error) {
	var result []entity.Tag
	for _, t := range f.tags {
		if t.UserID == userID && (t.Type == tagType || t.Type == entity.TagTypeBoth) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTagQuerier) CountIncomeRefs(_ context.Context, tagID string) (int, error) {
	return f.incomeRefs[tagID], nil
}

func (f *fakeTagQuerier) CountReceiptRefs(_ context.Context, tagID string) (int, error) {
	return f.receiptRefs[tagID], nil
}

func (f *fakeTagQuerier) DetachFromIncomes(_ context.Context, tagID string) error {
	f.incomeRefs[tagID] = 0
	return nil
}

func (f *fakeTagQuerier) DetachFromReceipts(_ context.Context, tagID string) error {
	f.receiptRefs[tagID] = 0
	return nil
}

func (f *fakeTagQuerier) Delete(_ context.Context, id string) error {
	if _, ok := f.tags[id]; !ok {
		return tag.ErrTagNotFound
	}
	delete(f.tags, id)
	return nil
}

var _ tagRepository.Querier = (*fakeTagQuerier)(nil)

func TestFindOrCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("creates missing tag with zero counter and no type", func(t *testing.T) {
		q := newFakeTagQuerier()

		created, err := FindOrCreate(ctx, q, userID, "  Lidl  ")
		require.NoError(t, err)

		assert.Equal(t, "Lidl", created.Name)
		assert.Equal(t, 0, created.Counter)
		assert.Equal(t, entity.TagTypeNone, created.Type)
		assert.Equal(t, userID, created.UserID)
		require.NotEmpty(t, created.ID)
		_, err = uuid.Parse(created.ID)
		assert.NoError(t, err)
	})

	t.Run("returns existing tag untouched", func(t *testing.T) {
		q := newFakeTagQuerier()
		existing := entity.Tag{
			ID:      uuid.NewString(),
			UserID:  userID,
			Name:    "Lidl",
			Type:    entity.TagTypeExpense,
			Counter: 7,
		}
		q.tags[existing.ID] = existing

		found, err := FindOrCreate(ctx, q, userID, "Lidl")
		require.NoError(t, err)

		assert.Equal(t, existing, found)
		assert.Len(t, q.tags, 1)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		q := newFakeTagQuerier()

		_, err := FindOrCreate(ctx, q, userID, "   ")
		assert.ErrorIs(t, err, tag.ErrEmptyTagName)
	})
}

func TestFindOrCreateFromExternal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("nil for empty organization name", func(t *testing.T) {
		q := newFakeTagQuerier()

		got, err := FindOrCreateFromExternal(ctx, q, userID, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("creates tag without touching counter", func(t *testing.T) {
		q := newFakeTagQuerier()

		got, err := FindOrCreateFromExternal(ctx, q, userID, "Kaufland SK")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Kaufland SK", got.Name)
		assert.Equal(t, 0, got.Counter)
	})
}

func TestRegisterAssigned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("nil tag is a no-op", func(t *testing.T) {
		q := newFakeTagQuerier()
		assert.NoError(t, RegisterAssigned(ctx, q, nil))
	})

	t.Run("first income assignment sets INCOME", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Employer"}
		q.tags[tg.ID] = tg
		q.incomeRefs[tg.ID] = 1

		require.NoError(t, RegisterAssigned(ctx, q, &tg))

		assert.Equal(t, 1, tg.Counter)
		assert.Equal(t, entity.TagTypeIncome, tg.Type)
		assert.Equal(t, tg, q.tags[tg.ID])
	})

	t.Run("tag used on both sides becomes BOTH", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Shared", Type: entity.TagTypeIncome, Counter: 3}
		q.tags[tg.ID] = tg
		q.incomeRefs[tg.ID] = 3
		q.receiptRefs[tg.ID] = 1

		require.NoError(t, RegisterAssigned(ctx, q, &tg))

		assert.Equal(t, 4, tg.Counter)
		assert.Equal(t, entity.TagTypeBoth, tg.Type)
	})
}

func TestRegisterUnassigned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("last detach clears type and counter", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Lidl", Type: entity.TagTypeExpense, Counter: 1}
		q.tags[tg.ID] = tg

		require.NoError(t, RegisterUnassigned(ctx, q, &tg))

		assert.Equal(t, 0, tg.Counter)
		assert.Equal(t, entity.TagTypeNone, tg.Type)
	})

	t.Run("counter never goes below zero", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Lidl", Counter: 0}
		q.tags[tg.ID] = tg

		require.NoError(t, RegisterUnassigned(ctx, q, &tg))
		assert.Equal(t, 0, tg.Counter)
	})

	t.Run("BOTH narrows to EXPENSE when incomes drop off", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Shared", Type: entity.TagTypeBoth, Counter: 2}
		q.tags[tg.ID] = tg
		q.receiptRefs[tg.ID] = 1

		require.NoError(t, RegisterUnassigned(ctx, q, &tg))

		assert.Equal(t, 1, tg.Counter)
		assert.Equal(t, entity.TagTypeExpense, tg.Type)
	})
}

func TestLoadForUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("empty id means no tag", func(t *testing.T) {
		q := newFakeTagQuerier()

		got, err := LoadForUser(ctx, q, userID, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed id", func(t *testing.T) {
		q := newFakeTagQuerier()

		_, err := LoadForUser(ctx, q, userID, "not-a-uuid")
		assert.ErrorIs(t, err, tag.ErrInvalidTagID)
	})

	t.Run("unknown id", func(t *testing.T) {
		q := newFakeTagQuerier()

		_, err := LoadForUser(ctx, q, userID, uuid.NewString())
		assert.ErrorIs(t, err, tag.ErrTagNotFound)
	})

	t.Run("foreign tag", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: uuid.NewString(), Name: "Lidl"}
		q.tags[tg.ID] = tg

		_, err := LoadForUser(ctx, q, userID, tg.ID)
		assert.ErrorIs(t, err, tag.ErrTagNotOwned)
	})

	t.Run("own tag resolves", func(t *testing.T) {
		q := newFakeTagQuerier()
		tg := entity.Tag{ID: uuid.NewString(), UserID: userID, Name: "Lidl", Counter: 2}
		q.tags[tg.ID] = tg

		got, err := LoadForUser(ctx, q, userID, tg.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, tg, *got)
	})
}
