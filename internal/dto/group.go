package dto

import (
	"time"

	"github.com/monetario-app/monetario/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a new group.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGroupRequest defines the data allowed for updating a group.
type UpdateGroupRequest struct {
	Name *string `json:"name"`
}

// GroupResponse defines the data returned for a group.
type GroupResponse struct {
	GroupID       string    `json:"groupID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListGroupsResponse wraps the list of groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a domain.Group to GroupResponse DTO
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:       g.GroupID,
		Name:          g.Name,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGroupsResponse converts a slice of domain.Group to the list DTO
func ToListGroupsResponse(groups []domain.Group) ListGroupsResponse {
	res := make([]GroupResponse, len(groups))
	for i := range groups {
		res[i] = ToGroupResponse(&groups[i])
	}
	return ListGroupsResponse{Groups: res}
}
