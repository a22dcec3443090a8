package analyticsRepository

const (
	querySumIncomes = `
		SELECT COALESCE(SUM(amount), 0)
		FROM incomes
		WHERE
			user_id = :user_id
			AND income_date >= :from
			AND income_date < :to
	`

	querySumExpenses = `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM receipts
		WHERE
			user_id = :user_id
			AND issue_date >= :from
			AND issue_date < :to
	`

	queryExpenseTotalsByCategory = `
		SELECT
			COALESCE(c.name, 'Uncategorized') AS category,
			COALESCE(SUM(i.total_price), 0) AS total
		FROM receipt_items i
		JOIN receipts r ON r.id = i.receipt_id
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE
			r.user_id = :user_id
			AND r.issue_date >= :from
			AND r.issue_date < :to
		GROUP BY COALESCE(c.name, 'Uncategorized')
		ORDER BY category ASC
	`

	queryIncomeTotalsByTag = `
		SELECT
			COALESCE(t.name, 'No tag') AS category,
			COALESCE(SUM(i.amount), 0) AS total
		FROM incomes i
		LEFT JOIN tags t ON t.id = i.tag_id
		WHERE
			i.user_id = :user_id
			AND i.income_date >= :from
			AND i.income_date < :to
		GROUP BY COALESCE(t.name, 'No tag')
		ORDER BY category ASC
	`

	queryDonutRows = `
		SELECT
			COALESCE(c.name, 'Uncategorized') AS category,
			COALESCE(t.name, 'No tag') AS tag,
			r.issue_date AS issue_date,
			i.total_price AS amount
		FROM receipt_items i
		JOIN receipts r ON r.id = i.receipt_id
		LEFT JOIN categories c ON c.id = i.category_id
		LEFT JOIN tags t ON t.id = r.tag_id
		WHERE
			r.user_id = :user_id
			AND (:account_id = '' OR r.account_id::text = :account_id)
			AND r.issue_date >= :from
			AND r.issue_date < :to
		ORDER BY category ASC, tag ASC, r.issue_date ASC
	`
)
