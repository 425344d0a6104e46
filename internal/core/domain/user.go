package domain

// User represents a user of the application in the domain.
type User struct {
	UserID    string `json:"userID"` // Primary Key (UUID)
	Email     string `json:"email"`  // Unique login identity
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    bool   `json:"active"`
	SuperUser bool   `json:"superUser"`
	GroupID   string `json:"groupID"` // Nullable FK -> groups.group_id
	AuditFields
}

// FullName returns the display name for the user, falling back to the email
// when the name fields are empty.
func (u User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Email
}
