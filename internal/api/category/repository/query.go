package categoryRepository

const (
	queryFindCategoryByID = `
		SELECT
			id,
			user_id,
			parent_id,
			name,
			count,
			is_pinned,
			created_at
		FROM categories
		WHERE id = :id
	`

	queryFindCategoryByUserAndName = `
		SELECT
			id,
			user_id,
			parent_id,
			name,
			count,
			is_pinned,
			created_at
		FROM categories
		WHERE
			(user_id = :user_id OR user_id IS NULL)
			AND name = :name
		ORDER BY user_id NULLS LAST
		LIMIT 1
	`

	queryListCategoriesForUser = `
		SELECT
			id,
			user_id,
			parent_id,
			name,
			count,
			is_pinned,
			created_at
		FROM categories
		WHERE user_id = :user_id OR user_id IS NULL
		ORDER BY is_pinned DESC, count DESC, name ASC
	`

	queryCreateCategory = `
		INSERT INTO categories (
			id,
			user_id,
			parent_id,
			name,
			count,
			is_pinned,
			created_at
		) VALUES (
			:id,
			:user_id,
			:parent_id,
			:name,
			:count,
			:is_pinned,
			:created_at
		)
	`

	querySaveCategory = `
		UPDATE categories
		SET
			name = :name,
			is_pinned = :is_pinned
		WHERE id = :id
	`

	queryIncrementCategoryCount = `
		UPDATE categories
		SET count = count + 1
		WHERE id = :id
	`

	queryDecrementCategoryCount = `
		UPDATE categories
		SET count = GREATEST(count - 1, 0)
		WHERE id = :id
	`

	queryDetachCategoryFromItems = `
		UPDATE receipt_items
		SET category_id = NULL
		WHERE category_id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`
)
