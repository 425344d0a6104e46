package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/internal/dto"
	"github.com/monetario-app/monetario/internal/middleware"
)

// currencyHandler handles HTTP requests for group currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	userService     portssvc.UserSvcFacade
}

func newCurrencyHandler(currencyService portssvc.CurrencySvcFacade, userService portssvc.UserSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: currencyService,
		userService:     userService,
	}
}

func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, userService portssvc.UserSvcFacade) {
	h := newCurrencyHandler(currencyService, userService)

	currencies := rg.Group("/currencies")
	currencies.POST("", h.createCurrency)
	currencies.GET("", h.listCurrencies)
	currencies.GET("/:currencyID", h.getCurrency)
	currencies.PUT("/:currencyID", h.updateCurrency)
	currencies.DELETE("/:currencyID", h.deleteCurrency)
}

// createCurrency godoc
// @Summary Add a currency to the user's group
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency data"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create currency")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{currencyID} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currencyID := c.Param("currencyID")

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List the currencies of the user's group
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to resolve user group")
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), user.GroupID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(currencies))
}

// updateCurrency godoc
// @Summary Update a currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Currency fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{currencyID} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("currencyID")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Tags currencies
// @Param currencyID path string true "Currency ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{currencyID} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	currencyID := c.Param("currencyID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID, userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete currency")
		return
	}

	c.Status(http.StatusNoContent)
}
