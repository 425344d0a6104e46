package domain

// CategoryType indicates whether a category classifies income or expenses.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// GroupCategory represents a record category scoped to a group.
type GroupCategory struct {
	CategoryID   string       `json:"categoryID"` // Primary Key (UUID)
	Name         string       `json:"name"`
	CategoryType CategoryType `json:"categoryType"`
	ParentID     string       `json:"parentID"` // Nullable FK -> group_categories.category_id (self-referencing)
	Logo         string       `json:"logo"`
	GroupID      string       `json:"groupID"` // FK -> groups.group_id (Not Null)
	AuditFields
}
