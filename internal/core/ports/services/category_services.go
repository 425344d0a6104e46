package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/dto"
)

// CategorySvcFacade defines operations for managing group categories
type CategorySvcFacade interface {
	// CreateCategory adds a category to the user's group.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.GroupCategory, error)

	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.GroupCategory, error)

	// ListCategories retrieves all categories in a group, optionally filtered
	// by category type.
	ListCategories(ctx context.Context, groupID string, categoryType *domain.CategoryType) ([]domain.GroupCategory, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.GroupCategory, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error
}
