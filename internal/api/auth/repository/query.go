package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			name,
			password,
			timezone,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:name,
			:password,
			:timezone,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			name,
			password,
			timezone,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			name,
			password,
			timezone,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = :name,
			timezone = :timezone,
			updated_at = :updated_at
		WHERE id = :id
	`
)
