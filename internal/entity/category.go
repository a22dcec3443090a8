package entity

import "time"

// Category classifies receipt items. Categories may be user-owned or shared
// (empty UserID) and form a tree through ParentID. Count tracks how many
// receipt items currently reference the category.
type Category struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ParentID  string    `db:"parent_id"`
	Name      string    `db:"name"`
	Count     int       `db:"count"`
	IsPinned  bool      `db:"is_pinned"`
	CreatedAt time.Time `db:"created_at"`
}
