package authRepository

const (
	queryCreateAdmin = `
		INSERT INTO admin_users (
			id,
			email,
			password_hash,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:password_hash,
			:created_at,
			:updated_at
		)
	`

	queryGetAdminByEmail = `
		SELECT
			id,
			email,
			password_hash,
			created_at,
			updated_at
		FROM admin_users
		WHERE email = :email
	`

	queryGetAdminByID = `
		SELECT
			id,
			email,
			password_hash,
			created_at,
			updated_at
		FROM admin_users
		WHERE id = :id
	`
)
