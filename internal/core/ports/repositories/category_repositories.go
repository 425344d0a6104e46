package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.GroupCategory, error)

	// ListCategoriesByGroup retrieves all categories defined in a group,
	// optionally filtered by category type.
	ListCategoriesByGroup(ctx context.Context, groupID string, categoryType *domain.CategoryType) ([]domain.GroupCategory, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.GroupCategory) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.GroupCategory) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
