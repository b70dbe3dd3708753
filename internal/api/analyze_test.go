package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriscope/backend/internal/nutrition"
	"github.com/nutriscope/backend/internal/types"
)

func analyzeRouter(weather *MockWeatherService, foods *MockFoodSource) *gin.Engine {
	handler := NewAnalyzeHandler(weather, foods, testLogger())
	return newTestRouter(handler.RegisterRoutes)
}

func hotWeather() *MockWeatherService {
	return &MockWeatherService{Snapshot: &types.WeatherSnapshot{Condition: "Clear", TempC: 35, Humidity: 40}}
}

func bananaRecords() *MockFoodSource {
	return &MockFoodSource{Records: map[string][]nutrition.FoodNutrient{
		"banana": {
			{Name: "Protein", Value: 1.1, Unit: "g"},
			{Name: "Fiber, total dietary", Value: 2.6, Unit: "g"},
		},
	}}
}

func TestAnalyzeRequiresCity(t *testing.T) {
	router := analyzeRouter(hotWeather(), bananaRecords())

	for _, body := range []map[string]interface{}{
		{},
		{"city": ""},
		{"city": "   "},
	} {
		w := PerformRequest(router, "POST", "/analyze", body)
		assert.Equal(t, 400, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "City required", resp["error"])
	}
}

func TestAnalyzeWeatherFailureIsNotFound(t *testing.T) {
	weather := &MockWeatherService{Err: errors.New("no matching location")}
	router := analyzeRouter(weather, bananaRecords())

	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{"city": "Atlantis"})

	assert.Equal(t, 404, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Weather data not found for city: Atlantis", resp["error"])
}

func TestAnalyzeEndToEnd(t *testing.T) {
	router := analyzeRouter(hotWeather(), bananaRecords())

	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{
		"city":  "TestCity",
		"items": []map[string]interface{}{{"name": "banana", "qty": 150}},
	})

	require.Equal(t, 200, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.Weather)
	assert.Equal(t, "Clear", resp.Weather.Condition)

	// 1.1 g/100g * 150 g -> 1.65 g; 2.6 g/100g * 150 g -> 3.9 g
	assert.Equal(t, "1.65 g", resp.TotalNutrients["Protein"])
	assert.Equal(t, "3.9 g", resp.TotalNutrients["Fiber"])

	// Both far below 60% of their baselines
	assert.Equal(t, "48.35 g", resp.Deficient["Protein"])
	assert.Equal(t, "26.1 g", resp.Deficient["Fiber"])

	// Protein and Fiber table foods plus the hot-weather pair
	names := make([]string, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		names = append(names, r.Food)
	}
	assert.Contains(t, names, "Cucumber")
	assert.Contains(t, names, "Yogurt")
	assert.Contains(t, names, "Chicken")
	assert.Contains(t, names, "Oats")
	assert.LessOrEqual(t, len(resp.Recommendations), 10)
}

func TestAnalyzeCoercesMalformedNumbers(t *testing.T) {
	router := analyzeRouter(hotWeather(), bananaRecords())

	// qty "abc" coerces to 0, so the item contributes nothing; height
	// and weight likewise fall back to 0 (no BMI adjustment)
	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{
		"city":   "TestCity",
		"items":  []map[string]interface{}{{"name": "banana", "qty": "abc"}},
		"height": "tall",
		"weight": "heavy",
	})

	require.Equal(t, 200, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.TotalNutrients)
	assert.Empty(t, resp.Deficient)
}

func TestAnalyzeNumericStringsAccepted(t *testing.T) {
	router := analyzeRouter(hotWeather(), bananaRecords())

	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{
		"city":  "TestCity",
		"items": []map[string]interface{}{{"name": "banana", "qty": "150"}},
	})

	require.Equal(t, 200, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.65 g", resp.TotalNutrients["Protein"])
}

func TestAnalyzeFailedLookupsAreSkipped(t *testing.T) {
	router := analyzeRouter(hotWeather(), bananaRecords())

	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{
		"city": "TestCity",
		"items": []map[string]interface{}{
			{"name": "unobtainium", "qty": 100},
			{"name": "banana", "qty": 100},
		},
	})

	require.Equal(t, 200, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.1 g", resp.TotalNutrients["Protein"])
}

func TestAnalyzeFemaleIronBaseline(t *testing.T) {
	foods := &MockFoodSource{Records: map[string][]nutrition.FoodNutrient{
		"spinach": {{Name: "Iron, Fe", Value: 2.7, Unit: "mg"}},
	}}
	router := analyzeRouter(hotWeather(), foods)

	w := PerformRequest(router, "POST", "/analyze", map[string]interface{}{
		"city":   "TestCity",
		"items":  []map[string]interface{}{{"name": "spinach", "qty": 100}},
		"gender": "female",
	})

	require.Equal(t, 200, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 2.7 mg of an 18 mg baseline -> shortfall 15.3 mg
	assert.Equal(t, "15.3 mg", resp.Deficient["Iron"])
}
