package dto

import (
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to add a category to a group.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=INCOME EXPENSE"`
	ParentID     *string             `json:"parentID"`
	Logo         string              `json:"logo"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parentID"`
	Logo     *string `json:"logo"`
}

// CategoryResponse defines the data returned for a group category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	Name          string              `json:"name"`
	CategoryType  domain.CategoryType `json:"categoryType"`
	GroupID       string              `json:"groupID"`
	ParentID      string              `json:"parentID,omitempty"`
	Logo          string              `json:"logo,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.GroupCategory to CategoryResponse DTO
func ToCategoryResponse(c *domain.GroupCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		CategoryType:  c.CategoryType,
		GroupID:       c.GroupID,
		ParentID:      c.ParentID,
		Logo:          c.Logo,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.GroupCategory to the list DTO
func ToListCategoriesResponse(categories []domain.GroupCategory) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: res}
}
