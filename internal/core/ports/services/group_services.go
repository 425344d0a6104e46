package services

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
	"github.com/monetario-app/monetario/internal/dto"
)

// GroupSvcFacade defines operations for managing groups
type GroupSvcFacade interface {
	// CreateGroup persists a new group and assigns the creator to it.
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error)

	// GetGroupByID retrieves a group by ID.
	GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// UpdateGroup updates an existing group's details.
	UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, requestingUserID string) (*domain.Group, error)

	// DeleteGroup removes a group.
	DeleteGroup(ctx context.Context, groupID string, requestingUserID string) error
}
