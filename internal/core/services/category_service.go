package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/monetario-app/monetario/internal/apperrors"
	"github.com/monetario-app/monetario/internal/core/domain"
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// categoryService manages the income/expense categories within a group.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	userRepo     portsrepo.UserReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, userRepo portsrepo.UserReader) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory adds a category to the creator's group.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.GroupCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	groupID, err := s.groupOf(ctx, creatorUserID)
	if err != nil {
		return nil, err
	}

	parentID := ""
	if req.ParentID != nil && *req.ParentID != "" {
		if err := s.checkParent(ctx, *req.ParentID, groupID, req.CategoryType); err != nil {
			return nil, err
		}
		parentID = *req.ParentID
	}

	now := time.Now().UTC()
	category := domain.GroupCategory{
		CategoryID:   uuid.NewString(),
		Name:         req.Name,
		CategoryType: req.CategoryType,
		GroupID:      groupID,
		ParentID:     parentID,
		Logo:         req.Logo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID), slog.String("group_id", groupID))
	return &category, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.GroupCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return category, nil
}

// ListCategories retrieves all categories in a group, optionally filtered by type.
func (s *categoryService) ListCategories(ctx context.Context, groupID string, categoryType *domain.CategoryType) ([]domain.GroupCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListCategoriesByGroup(ctx, groupID, categoryType)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates an existing category's details.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.GroupCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.findGroupCategory(ctx, categoryID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ParentID != nil {
		if *req.ParentID != "" {
			if err := s.checkParent(ctx, *req.ParentID, category.GroupID, category.CategoryType); err != nil {
				return nil, err
			}
		}
		category.ParentID = *req.ParentID
	}
	if req.Logo != nil {
		category.Logo = *req.Logo
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findGroupCategory(ctx, categoryID, requestingUserID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// checkParent verifies a parent category exists, sits in the same group, and
// shares the child's category type.
func (s *categoryService) checkParent(ctx context.Context, parentID, groupID string, categoryType domain.CategoryType) error {
	parent, err := s.categoryRepo.FindCategoryByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewReferenceNotFound("parentID", "category")
		}
		return fmt.Errorf("failed to find parent category %s: %w", parentID, err)
	}
	if parent.GroupID != groupID {
		return apperrors.NewReferenceNotFound("parentID", "category")
	}
	if parent.CategoryType != categoryType {
		return fmt.Errorf("%w: parent category type does not match", apperrors.ErrValidation)
	}
	return nil
}

func (s *categoryService) groupOf(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	if user.GroupID == "" {
		return "", fmt.Errorf("%w: user does not belong to a group", apperrors.ErrValidation)
	}
	return user.GroupID, nil
}

// findGroupCategory fetches a category and verifies it belongs to the
// requesting user's group. Categories of other groups come back as not found.
func (s *categoryService) findGroupCategory(ctx context.Context, categoryID string, requestingUserID string) (*domain.GroupCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	groupID, err := s.groupOf(ctx, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if category.GroupID != groupID {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}
