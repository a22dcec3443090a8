package tagRepository

const (
	queryFindTagByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			counter
		FROM tags
		WHERE id = :id
	`

	queryFindTagByUserAndName = `
		SELECT
			id,
			user_id,
			name,
			type,
			counter
		FROM tags
		WHERE
			user_id = :user_id
			AND name = :name
	`

	queryCreateTag = `
		INSERT INTO tags (
			id,
			user_id,
			name,
			type,
			counter
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:counter
		)
	`

	querySaveTag = `
		UPDATE tags
		SET
			name = :name,
			type = :type,
			counter = :counter
		WHERE id = :id
	`

	queryListTagsByUserAndType = `
		SELECT
			id,
			user_id,
			name,
			type,
			counter
		FROM tags
		WHERE
			user_id = :user_id
			AND (type = :type OR type = 'BOTH')
		ORDER BY counter DESC, name ASC
	`

	queryCountIncomeRefs = `
		SELECT COUNT(*)
		FROM incomes
		WHERE tag_id = :tag_id
	`

	queryCountReceiptRefs = `
		SELECT COUNT(*)
		FROM receipts
		WHERE tag_id = :tag_id
	`

	queryDetachTagFromIncomes = `
		UPDATE incomes
		SET tag_id = NULL
		WHERE tag_id = :tag_id
	`

	queryDetachTagFromReceipts = `
		UPDATE receipts
		SET tag_id = NULL
		WHERE tag_id = :tag_id
	`

	queryDeleteTag = `
		DELETE FROM tags
		WHERE id = :id
	`
)
