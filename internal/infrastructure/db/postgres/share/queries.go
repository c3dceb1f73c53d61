package share

const (
	// Atomic insert-or-update keyed by the grant uniqueness constraint.
	// Matches any existing row for the pair, expired or not, and only
	// ever moves expires_at. (xmax = 0) distinguishes insert from update.
	UpsertGrant = `
		INSERT INTO file_shares (file_id, owner_id, shared_with_user_id, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (file_id, shared_with_user_id) WHERE shared_with_user_id IS NOT NULL
		DO UPDATE SET expires_at = EXCLUDED.expires_at
		RETURNING uuid, (xmax = 0) AS inserted
	`
	// Singleton link per file. An update keeps the stored share_token,
	// so a re-issue returns the original token.
	UpsertLink = `
		INSERT INTO file_shares (file_id, owner_id, share_token, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (file_id) WHERE share_token IS NOT NULL
		DO UPDATE SET expires_at = EXCLUDED.expires_at
		RETURNING uuid, share_token, (xmax = 0) AS inserted
	`
	SelectActiveGrant = `
		SELECT id, uuid, file_id, owner_id, shared_with_user_id, share_token, expires_at, created_at
		FROM file_shares
		WHERE file_id = $1 AND shared_with_user_id = $2
		AND (expires_at IS NULL OR expires_at > now())
	`
	SelectLinkByToken = `
		SELECT fs.uuid, fs.file_id, f.uuid AS file_uuid, fs.shared_with_user_id, fs.share_token, fs.expires_at
		FROM file_shares fs
		JOIN files f ON fs.file_id = f.id
		WHERE fs.share_token = $1
		AND (fs.expires_at IS NULL OR fs.expires_at > now())
	`
	SelectSharesByFile = `
		SELECT fs.id, fs.uuid, fs.file_id, fs.owner_id, fs.shared_with_user_id,
		       u.username, u.email, fs.share_token, fs.expires_at, fs.created_at
		FROM file_shares fs
		LEFT JOIN users u ON fs.shared_with_user_id = u.id
		WHERE fs.file_id = $1
		ORDER BY fs.created_at DESC
	`
	DeleteShareByUUID = `DELETE FROM file_shares WHERE uuid = $1 AND owner_id = $2`

	tokenUniqueConstraint = "file_shares_token_key"
)
