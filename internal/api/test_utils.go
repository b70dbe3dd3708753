package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/internal/nutrition"
	"github.com/nutriscope/backend/internal/types"
)

// MockWeatherService serves a canned snapshot or error.
type MockWeatherService struct {
	Snapshot *types.WeatherSnapshot
	Err      error
	City     string
}

func (m *MockWeatherService) Current(_ context.Context, city string) (*types.WeatherSnapshot, error) {
	m.City = city
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshot, nil
}

// MockFoodSource serves canned nutrient entries per food name.
type MockFoodSource struct {
	Records map[string][]nutrition.FoodNutrient
}

func (m *MockFoodSource) SearchNutrients(_ context.Context, food string) ([]nutrition.FoodNutrient, error) {
	entries, ok := m.Records[food]
	if !ok {
		return nil, errors.New("food not found")
	}
	return entries, nil
}

// MockConsultService records its inputs and serves canned replies.
type MockConsultService struct {
	Consultation *types.Consultation
	Reply        string
	Err          error

	GotProfile  types.Profile
	GotMessage  string
	GotAnalysis *types.AnalysisContext
	GotLang     string
}

func (m *MockConsultService) Consult(_ context.Context, profile types.Profile, totals, deficient map[string]string, weather *types.WeatherSnapshot, lang string) (*types.Consultation, error) {
	m.GotProfile = profile
	m.GotLang = lang
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Consultation, nil
}

func (m *MockConsultService) Chat(_ context.Context, message string, analysis *types.AnalysisContext, lang string) (string, error) {
	m.GotMessage = message
	m.GotAnalysis = analysis
	m.GotLang = lang
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// PerformRequest performs an HTTP request against a test router
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func newTestRouter(register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	register(router.Group(""))
	return router
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
