package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT id, uuid, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	SelectUsersExcept = `
		SELECT id, uuid, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id <> $1
		ORDER BY username
	`
	InsertUser = `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, username, email, password_hash, created_at, updated_at
	`
	SelectIDByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`
)
