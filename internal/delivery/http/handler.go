package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nutrikit/backend/internal/domain"
	"github.com/nutrikit/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	calculators *usecase.CalculatorService
	nutrition   *usecase.NutritionService
}

// NewHandler creates a new HTTP handler
func NewHandler(calculators *usecase.CalculatorService, nutrition *usecase.NutritionService) *Handler {
	return &Handler{
		calculators: calculators,
		nutrition:   nutrition,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrikit-backend",
		"version": "1.0.0",
	})
}

// CalculateBMI handles POST /bmi
func (h *Handler) CalculateBMI(c *gin.Context) {
	var req domain.BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.calculators.CalculateBMI(&req))
}

// CalculateBodyFrame handles POST /body-frame
func (h *Handler) CalculateBodyFrame(c *gin.Context) {
	var req domain.BodyFrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.calculators.CalculateBodyFrame(&req))
}

// CalculateBodyFat handles POST /body-fat
func (h *Handler) CalculateBodyFat(c *gin.Context) {
	var req domain.BodyFatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.calculators.CalculateBodyFat(&req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CalculateMacros handles POST /macros
func (h *Handler) CalculateMacros(c *gin.Context) {
	var req domain.MacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.calculators.CalculateMacros(&req))
}

// FoodNutrition handles GET /food-nutrition. Ingredients and amounts are
// parallel repeated query parameters; the response carries one line per
// ingredient in request order.
func (h *Handler) FoodNutrition(c *gin.Context) {
	ingredients := c.QueryArray("ingredients")
	amounts := c.QueryArray("amounts")

	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}
	if len(ingredients) != len(amounts) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the number of ingredients must match the number of amounts"})
		return
	}

	requests := make([]domain.IngredientRequest, len(ingredients))
	for i, name := range ingredients {
		amount, err := strconv.ParseFloat(amounts[i], 64)
		if err != nil || amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amounts must be positive numbers"})
			return
		}
		requests[i] = domain.IngredientRequest{Name: name, AmountGrams: amount}
	}

	resp, err := h.nutrition.AggregateNutrition(c.Request.Context(), requests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
