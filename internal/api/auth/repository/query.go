package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
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
)
