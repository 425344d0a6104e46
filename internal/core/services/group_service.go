package services

import (
	"context"
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

// groupService manages groups and the membership of their users.
type groupService struct {
	groupRepo portsrepo.GroupRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.GroupSvcFacade {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

// CreateGroup persists a new group and moves the creator into it.
func (s *groupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	creator, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find creator %s: %w", creatorUserID, err)
	}

	now := time.Now().UTC()
	group := domain.Group{
		GroupID: uuid.NewString(),
		Name:    req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		logger.Error("Failed to save group", slog.String("error", err.Error()), slog.String("group_id", group.GroupID))
		return nil, fmt.Errorf("failed to save group: %w", err)
	}

	creator.GroupID = group.GroupID
	creator.LastUpdatedAt = now
	creator.LastUpdatedBy = creatorUserID
	if err := s.userRepo.UpdateUser(ctx, *creator); err != nil {
		logger.Error("Failed to assign creator to group", slog.String("error", err.Error()), slog.String("group_id", group.GroupID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to assign creator to group: %w", err)
	}

	logger.Info("Group created successfully", slog.String("group_id", group.GroupID), slog.String("user_id", creatorUserID))
	return &group, nil
}

// GetGroupByID retrieves a group by ID.
func (s *groupService) GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group by ID %s: %w", groupID, err)
	}
	return group, nil
}

// ListGroups retrieves all groups.
func (s *groupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		logger.Error("Failed to list groups", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// UpdateGroup updates an existing group's details. Only members may update
// their own group.
func (s *groupService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, requestingUserID string) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	group, err := s.findMemberGroup(ctx, groupID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	group.LastUpdatedAt = time.Now().UTC()
	group.LastUpdatedBy = requestingUserID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		logger.Error("Failed to update group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group. Only members may delete their own group.
func (s *groupService) DeleteGroup(ctx context.Context, groupID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findMemberGroup(ctx, groupID, requestingUserID); err != nil {
		return err
	}

	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		logger.Error("Failed to delete group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return fmt.Errorf("failed to delete group: %w", err)
	}

	logger.Info("Group deleted successfully", slog.String("group_id", groupID), slog.String("user_id", requestingUserID))
	return nil
}

// findMemberGroup fetches a group and verifies the requesting user belongs
// to it. Non-members see the group as not found.
func (s *groupService) findMemberGroup(ctx context.Context, groupID string, requestingUserID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group by ID %s: %w", groupID, err)
	}
	user, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", requestingUserID, err)
	}
	if user.GroupID != groupID && !user.SuperUser {
		return nil, apperrors.ErrNotFound
	}
	return group, nil
}
