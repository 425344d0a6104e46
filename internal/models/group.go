package models

// Group represents a row in the groups table.
type Group struct {
	GroupID string `db:"group_id"`
	Name    string `db:"name"`
	AuditFields
}
