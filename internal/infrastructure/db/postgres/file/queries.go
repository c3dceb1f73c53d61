package file

const (
	InsertFile = `
		INSERT INTO files (user_id, original_name, file_type, size_bytes, bucket, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, user_id, original_name, file_type, size_bytes, bucket, storage_key, created_at
	`
	SelectFileByUUID = `
		SELECT id, uuid, user_id, original_name, file_type, size_bytes, bucket, storage_key, created_at
		FROM files
		WHERE uuid = $1
	`
	SelectFilesByOwner = `
		SELECT id, uuid, user_id, original_name, file_type, size_bytes, bucket, storage_key, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	SelectFilesSharedWith = `
		SELECT f.id, f.uuid, f.user_id, f.original_name, f.file_type, f.size_bytes, f.bucket, f.storage_key, f.created_at,
		       u.username AS owner_name, fs.created_at AS shared_at
		FROM files f
		JOIN file_shares fs ON f.id = fs.file_id
		JOIN users u ON f.user_id = u.id
		WHERE fs.shared_with_user_id = $1
		AND (fs.expires_at IS NULL OR fs.expires_at > now())
		ORDER BY fs.created_at DESC
	`
	SelectOwnerIDByUUID = `SELECT user_id FROM files WHERE uuid = $1::uuid`
	SelectIDByUUID      = `SELECT id FROM files WHERE uuid = $1::uuid`
	DeleteFileByID      = `DELETE FROM files WHERE id = $1`
)
