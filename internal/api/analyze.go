package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/internal/nutrition"
	"github.com/nutriscope/backend/internal/service"
)

// AnalyzeHandler handles nutrition-analysis requests
type AnalyzeHandler struct {
	weather    service.IWeatherService
	aggregator *nutrition.Aggregator
	logger     *zap.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler instance
func NewAnalyzeHandler(weather service.IWeatherService, foods nutrition.FoodSource, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		weather:    weather,
		aggregator: nutrition.NewAggregator(foods, logger),
		logger:     logger,
	}
}

// RegisterRoutes registers the analyze routes
func (h *AnalyzeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze", h.Analyze)
}

// Analyze runs the full pipeline: weather lookup, per-food nutrient
// aggregation, deficiency scoring and food recommendations.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City required"})
		return
	}

	weather, err := h.weather.Current(c.Request.Context(), city)
	if err != nil {
		h.logger.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Weather data not found for city: %s", city)})
		return
	}

	items := make([]nutrition.FoodItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, nutrition.FoodItem{
			Name:          item.Name,
			QuantityGrams: item.Qty.Float64(),
		})
	}

	totals := h.aggregator.Totals(c.Request.Context(), items)
	deficient := nutrition.Deficiencies(totals, req.Gender, req.Height.Float64(), req.Weight.Float64())
	recommendations := nutrition.Recommend(deficient, weather)

	deficientOut := make(map[string]string, len(deficient))
	for n, shortfall := range deficient {
		deficientOut[string(n)] = shortfall
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Weather:         weather,
		TotalNutrients:  totals.Display(),
		Deficient:       deficientOut,
		Recommendations: recommendations,
	})
}
