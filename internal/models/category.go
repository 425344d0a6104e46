package models

// CategoryType indicates whether a category classifies income or expenses.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// GroupCategory represents a row in the group_categories table.
type GroupCategory struct {
	CategoryID   string       `db:"category_id"`
	Name         string       `db:"name"`
	CategoryType CategoryType `db:"category_type"`
	ParentID     string       `db:"parent_id"` // Nullable
	Logo         string       `db:"logo"`
	GroupID      string       `db:"group_id"`
	AuditFields
}
