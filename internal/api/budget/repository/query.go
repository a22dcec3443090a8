package budgetRepository

const (
	queryListBudgetsByMonth = `
		SELECT
			id,
			month,
			section,
			limit_amount,
			percent_target
		FROM monthly_budgets
		WHERE month = :month
		ORDER BY section ASC
	`

	// Seeding never overwrites an existing (month, section) row.
	querySeedBudget = `
		INSERT INTO monthly_budgets (
			id,
			month,
			section,
			limit_amount,
			percent_target
		) VALUES (
			:id,
			:month,
			:section,
			:limit_amount,
			:percent_target
		)
		ON CONFLICT (month, section) DO NOTHING
	`

	queryUpsertBudget = `
		INSERT INTO monthly_budgets (
			id,
			month,
			section,
			limit_amount,
			percent_target
		) VALUES (
			:id,
			:month,
			:section,
			:limit_amount,
			:percent_target
		)
		ON CONFLICT (month, section) DO UPDATE SET
			limit_amount = EXCLUDED.limit_amount,
			percent_target = EXCLUDED.percent_target
	`

	queryFindGoalByID = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			section,
			month_from,
			month_to,
			is_done,
			created_at
		FROM goals
		WHERE id = :id
	`

	queryListGoalsByUser = `
		SELECT
			id,
			user_id,
			name,
			type,
			target_amount,
			section,
			month_from,
			month_to,
			is_done,
			created_at
		FROM goals
		WHERE user_id = :user_id
		ORDER BY is_done ASC, created_at DESC
	`

	queryCreateGoal = `
		INSERT INTO goals (
			id,
			user_id,
			name,
			type,
			target_amount,
			section,
			month_from,
			month_to,
			is_done,
			created_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:type,
			:target_amount,
			:section,
			:month_from,
			:month_to,
			:is_done,
			:created_at
		)
	`

	querySaveGoal = `
		UPDATE goals
		SET
			name = :name,
			target_amount = :target_amount,
			section = :section,
			month_from = :month_from,
			month_to = :month_to,
			is_done = :is_done
		WHERE id = :id
	`

	queryDeleteGoal = `
		DELETE FROM goals
		WHERE id = :id
	`
)
