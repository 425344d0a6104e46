package repositories

import (
	"context"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// GroupReader defines read operations for group data
type GroupReader interface {
	// FindGroupByID retrieves a specific group by its unique identifier.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// GroupWriter defines write operations for group data
type GroupWriter interface {
	// SaveGroup persists a new group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// UpdateGroup updates an existing group's details.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// DeleteGroup removes a group.
	DeleteGroup(ctx context.Context, groupID string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
