package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// groupHandler handles HTTP requests for groups.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
	userService  portssvc.UserSvcFacade
}

func newGroupHandler(groupService portssvc.GroupSvcFacade, userService portssvc.UserSvcFacade) *groupHandler {
	return &groupHandler{
		groupService: groupService,
		userService:  userService,
	}
}

func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade, userService portssvc.UserSvcFacade) {
	h := newGroupHandler(groupService, userService)

	groups := rg.Group("/groups")
	groups.POST("", h.createGroup)
	groups.GET("", h.listGroups)
	groups.GET("/:groupID", h.getGroup)
	groups.PUT("/:groupID", h.updateGroup)
	groups.DELETE("/:groupID", h.deleteGroup)
	groups.GET("/:groupID/users", h.listGroupUsers)
}

// createGroup godoc
// @Summary Create a group
// @Description Creates a group and assigns the creator to it
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group data"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// getGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /groups/{groupID} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	groupID := c.Param("groupID")

	group, err := h.groupService.GetGroupByID(c.Request.Context(), groupID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve group")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} dto.ListGroupsResponse
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list groups")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGroupsResponse(groups))
}

// updateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param group body dto.UpdateGroupRequest true "Group fields to update"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /groups/{groupID} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groupID := c.Param("groupID")

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), groupID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update group")
		return
	}

	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// deleteGroup godoc
// @Summary Delete a group
// @Tags groups
// @Param groupID path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /groups/{groupID} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	groupID := c.Param("groupID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), groupID, userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete group")
		return
	}

	c.Status(http.StatusNoContent)
}

// listGroupUsers godoc
// @Summary List the users of a group
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.ListUsersResponse
// @Router /groups/{groupID}/users [get]
func (h *groupHandler) listGroupUsers(c *gin.Context) {
	groupID := c.Param("groupID")

	users, err := h.userService.ListUsersByGroup(c.Request.Context(), groupID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list group users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}
