package domain

// Group represents a household or team sharing currencies and categories.
type Group struct {
	GroupID string `json:"groupID"` // Primary Key (UUID)
	Name    string `json:"name"`
	AuditFields
}
