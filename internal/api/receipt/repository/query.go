package receiptRepository

const (
	queryFindReceiptByID = `
		SELECT
			id,
			external_uid,
			user_id,
			account_id,
			tag_id,
			description,
			issue_date,
			currency,
			total_amount,
			extra_metadata,
			created_at
		FROM receipts
		WHERE id = :id
	`

	queryFindReceiptByExternalUID = `
		SELECT
			id,
			external_uid,
			user_id,
			account_id,
			tag_id,
			description,
			issue_date,
			currency,
			total_amount,
			extra_metadata,
			created_at
		FROM receipts
		WHERE
			user_id = :user_id
			AND external_uid = :external_uid
	`

	queryListReceiptsByUser = `
		SELECT
			id,
			external_uid,
			user_id,
			account_id,
			tag_id,
			description,
			issue_date,
			currency,
			total_amount,
			extra_metadata,
			created_at
		FROM receipts
		WHERE user_id = :user_id
		ORDER BY issue_date DESC, created_at DESC
	`

	queryCreateReceipt = `
		INSERT INTO receipts (
			id,
			external_uid,
			user_id,
			account_id,
			tag_id,
			description,
			issue_date,
			currency,
			total_amount,
			extra_metadata,
			created_at
		) VALUES (
			:id,
			:external_uid,
			:user_id,
			:account_id,
			:tag_id,
			:description,
			:issue_date,
			:currency,
			:total_amount,
			:extra_metadata,
			:created_at
		)
	`

	querySaveReceipt = `
		UPDATE receipts
		SET
			tag_id = :tag_id,
			description = :description,
			issue_date = :issue_date,
			total_amount = :total_amount,
			extra_metadata = :extra_metadata
		WHERE id = :id
	`

	queryDeleteReceipt = `
		DELETE FROM receipts
		WHERE id = :id
	`

	queryFindItemByID = `
		SELECT
			id,
			receipt_id,
			user_id,
			category_id,
			name,
			quantity,
			unit_price,
			total_price,
			extra_metadata
		FROM receipt_items
		WHERE id = :id
	`

	queryListItemsByReceipt = `
		SELECT
			id,
			receipt_id,
			user_id,
			category_id,
			name,
			quantity,
			unit_price,
			total_price,
			extra_metadata
		FROM receipt_items
		WHERE receipt_id = :receipt_id
		ORDER BY name ASC
	`

	queryCreateItem = `
		INSERT INTO receipt_items (
			id,
			receipt_id,
			user_id,
			category_id,
			name,
			quantity,
			unit_price,
			total_price,
			extra_metadata
		) VALUES (
			:id,
			:receipt_id,
			:user_id,
			:category_id,
			:name,
			:quantity,
			:unit_price,
			:total_price,
			:extra_metadata
		)
	`

	querySaveItem = `
		UPDATE receipt_items
		SET
			category_id = :category_id,
			name = :name,
			quantity = :quantity,
			unit_price = :unit_price,
			total_price = :total_price,
			extra_metadata = :extra_metadata
		WHERE id = :id
	`

	queryDeleteItem = `
		DELETE FROM receipt_items
		WHERE id = :id
	`

	queryDeleteItemsByReceipt = `
		DELETE FROM receipt_items
		WHERE receipt_id = :receipt_id
	`

	queryFindAccountByID = `
		SELECT
			id,
			name,
			balance,
			currency,
			created_at
		FROM accounts
		WHERE id = :id
	`

	queryCountMembership = `
		SELECT COUNT(*)
		FROM account_members
		WHERE
			user_id = :user_id
			AND account_id = :account_id
	`

	queryCreateAccount = `
		INSERT INTO accounts (
			id,
			name,
			balance,
			currency,
			created_at
		) VALUES (
			:id,
			:name,
			:balance,
			:currency,
			:created_at
		)
	`

	queryAddAccountMember = `
		INSERT INTO account_members (
			user_id,
			account_id,
			role
		) VALUES (
			:user_id,
			:account_id,
			:role
		)
		ON CONFLICT (user_id, account_id) DO NOTHING
	`

	queryListAccountsForUser = `
		SELECT
			a.id,
			a.name,
			a.balance,
			a.currency,
			a.created_at
		FROM accounts a
		JOIN account_members m ON m.account_id = a.id
		WHERE m.user_id = :user_id
		ORDER BY a.created_at ASC
	`
)
