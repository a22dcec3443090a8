package entity

type TagType string

const (
	TagTypeIncome  TagType = "INCOME"
	TagTypeExpense TagType = "EXPENSE"
	TagTypeBoth    TagType = "BOTH"
	// TagTypeNone means the tag is not attached to anything yet.
	TagTypeNone TagType = ""
)

func IsValidTagType(t string) bool {
	switch TagType(t) {
	case TagTypeIncome, TagTypeExpense:
		return true
	default:
		return false
	}
}

// Tag is a user-scoped label attachable to incomes and receipts. Its type is
// never set directly; it is re-derived from the live associations after every
// attach or detach.
type Tag struct {
	ID      string  `db:"id"`
	UserID  string  `db:"user_id"`
	Name    string  `db:"name"`
	Type    TagType `db:"type"`
	Counter int     `db:"counter"`
}

func (t *Tag) IncrementCounter() {
	t.Counter++
}

func (t *Tag) DecrementCounter() {
	if t.Counter > 0 {
		t.Counter--
	}
}

// InferTagType derives the tag type from the current association sets.
// Recomputing from scratch instead of patching incrementally keeps the cached
// value from drifting.
func InferTagType(hasIncomes, hasReceipts bool) TagType {
	switch {
	case hasIncomes && hasReceipts:
		return TagTypeBoth
	case hasReceipts:
		return TagTypeExpense
	case hasIncomes:
		return TagTypeIncome
	default:
		return TagTypeNone
	}
}
