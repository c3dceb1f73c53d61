package audit

const (
	InsertRecord = `
		INSERT INTO audit_log (file_id, user_id, action, role)
		VALUES ($1, $2, $3, $4)
	`
	SelectRecordsByFile = `
		SELECT al.id, al.file_id, al.action, al.role, u.uuid, u.username, u.email, al.created_at
		FROM audit_log al
		JOIN users u ON al.user_id = u.id
		WHERE al.file_id = $1
		ORDER BY al.created_at DESC
	`
)
