package incomeRepository

const (
	queryFindIncomeByID = `
		SELECT
			id,
			user_id,
			tag_id,
			description,
			amount,
			income_date,
			extra_metadata,
			created_at,
			updated_at
		FROM incomes
		WHERE id = :id
	`

	queryListIncomesByUser = `
		SELECT
			id,
			user_id,
			tag_id,
			description,
			amount,
			income_date,
			extra_metadata,
			created_at,
			updated_at
		FROM incomes
		WHERE user_id = :user_id
		ORDER BY income_date DESC, created_at DESC
	`

	queryCreateIncome = `
		INSERT INTO incomes (
			id,
			user_id,
			tag_id,
			description,
			amount,
			income_date,
			extra_metadata,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:tag_id,
			:description,
			:amount,
			:income_date,
			:extra_metadata,
			:created_at,
			:updated_at
		)
	`

	querySaveIncome = `
		UPDATE incomes
		SET
			tag_id = :tag_id,
			description = :description,
			amount = :amount,
			income_date = :income_date,
			extra_metadata = :extra_metadata,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteIncome = `
		DELETE FROM incomes
		WHERE id = :id
	`
)
