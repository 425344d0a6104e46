package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// recordHandler handles HTTP requests for standalone records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(recordService portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{recordService: recordService}
}

func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/records")
	records.POST("", h.createRecord)
	records.GET("", h.listRecords)
	records.GET("/:recordID", h.getRecord)
	records.PUT("/:recordID", h.updateRecord)
	records.DELETE("/:recordID", h.deleteRecord)
}

// createRecord godoc
// @Summary Create a record
// @Description Creates a standalone expense or income record
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Record data"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// getRecord godoc
// @Summary Get a record
// @Tags records
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Router /records/{recordID} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	recordID := c.Param("recordID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.GetRecordByID(c.Request.Context(), recordID, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve record")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List records for an account
// @Tags records
// @Produce json
// @Param accountID query string true "Account ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.recordService.ListRecords(c.Request.Context(), userID, params)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list records")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateRecord godoc
// @Summary Update a record
// @Description Updates a standalone record; records owned by a transfer are rejected
// @Tags records
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param record body dto.UpdateRecordRequest true "Record fields to update"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Validation error or transactional record"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /records/{recordID} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recordID := c.Param("recordID")

	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update record")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a record
// @Description Deletes a standalone record; records owned by a transfer are rejected
// @Tags records
// @Param recordID path string true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Transactional record"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	recordID := c.Param("recordID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID, userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete record")
		return
	}

	c.Status(http.StatusNoContent)
}
