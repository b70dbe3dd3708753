package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/internal/api"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	analyzeHandler := api.NewAnalyzeHandler(nil, nil, zap.NewNop())
	consultHandler := api.NewConsultHandler(nil, zap.NewNop())
	return SetupRouter(analyzeHandler, consultHandler, zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	engine := testEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutesRegisteredOnBothPrefixes(t *testing.T) {
	engine := testEngine()

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, path := range []string{"/analyze", "/consult", "/chat"} {
		assert.True(t, registered["POST "+path], "missing POST %s", path)
		assert.True(t, registered["POST /api/v1"+path], "missing POST /api/v1%s", path)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	engine := testEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
