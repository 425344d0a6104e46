package models

// User represents a row in the users table.
// PasswordHash never leaves the persistence/service boundary.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PasswordHash string `db:"password_hash" json:"-"`
	Active       bool   `db:"active"`
	SuperUser    bool   `db:"super_user"`
	GroupID      string `db:"group_id"` // Nullable
	AuditFields
}
