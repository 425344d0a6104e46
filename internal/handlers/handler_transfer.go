package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// transferHandler handles HTTP requests for transfers and their record pairs.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(transferService portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: transferService}
}

// RegisterTransferRoutes mounts the transfer endpoints on the given group.
// Exported so tests can mount them against a mock service.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	transfers.POST("", h.createTransfer)
	transfers.GET("", h.listTransfers)
	transfers.GET("/:transferID", h.getTransfer)
	transfers.PUT("/:transferID", h.updateTransfer)
	transfers.DELETE("/:transferID", h.deleteTransfer)
}

// createTransfer godoc
// @Summary Post a transfer
// @Description Creates a transfer and its mirrored expense/income record pair atomically
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer data"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// getTransfer godoc
// @Summary Get a transfer
// @Description Retrieves a transfer with its record pair
// @Tags transfers
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	transferID := c.Param("transferID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.GetTransferByID(c.Request.Context(), transferID, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List transfers
// @Description Retrieves a paginated list of the user's transfers
// @Tags transfers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransfersResponse
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listTransfers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.transferService.ListTransfers(c.Request.Context(), userID, params)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateTransfer godoc
// @Summary Repost a transfer
// @Description Rewrites a transfer and both linked records atomically
// @Tags transfers
// @Accept json
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Param transfer body dto.UpdateTransferRequest true "Replacement transfer data"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Router /transfers/{transferID} [put]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("transferID")

	var req dto.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.UpdateTransfer(c.Request.Context(), transferID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Description Removes a transfer and both linked records atomically
// @Tags transfers
// @Param transferID path string true "Transfer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Router /transfers/{transferID} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	transferID := c.Param("transferID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), transferID, userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete transfer")
		return
	}

	c.Status(http.StatusNoContent)
}
