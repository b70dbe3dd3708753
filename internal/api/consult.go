package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutriscope/backend/internal/service"
	"github.com/nutriscope/backend/internal/types"
)

// Profile defaults applied when the client omits fields, matching the
// public API contract.
const (
	defaultAge      = 30
	defaultGender   = "male"
	defaultActivity = "moderate"
)

// ConsultHandler handles generative-AI consultation and chat requests.
// The consult service is nil when the Gemini credentials are not
// configured; both routes then degrade to explicit errors.
type ConsultHandler struct {
	llm    service.IConsultService
	logger *zap.Logger
}

// NewConsultHandler creates a new ConsultHandler instance
func NewConsultHandler(llm service.IConsultService, logger *zap.Logger) *ConsultHandler {
	return &ConsultHandler{
		llm:    llm,
		logger: logger,
	}
}

// RegisterRoutes registers the consult and chat routes
func (h *ConsultHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/consult", h.Consult)
	router.POST("/chat", h.Chat)
}

// Consult asks the generative collaborator for a narrative diet
// consultation built from a previous analysis.
func (h *ConsultHandler) Consult(c *gin.Context) {
	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if h.llm == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Gemini API key not configured on server"})
		return
	}

	profile := types.Profile{
		Age:      int(req.Age.Float64()),
		Gender:   req.Gender,
		HeightCm: req.Height.Float64(),
		WeightKg: req.Weight.Float64(),
		Activity: req.Activity,
	}
	if profile.Age == 0 {
		profile.Age = defaultAge
	}
	if profile.Gender == "" {
		profile.Gender = defaultGender
	}
	if profile.Activity == "" {
		profile.Activity = defaultActivity
	}

	lang := req.Lang
	if lang == "" {
		lang = "en"
	}

	consult, err := h.llm.Consult(c.Request.Context(), profile, req.TotalNutrients, req.Deficient, req.Weather, lang)
	if err != nil {
		h.logger.Error("consultation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "consult": consult})
}

// Chat answers a free-form question using a previous analysis as model
// context.
func (h *ConsultHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "No message provided"})
		return
	}

	if h.llm == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Gemini API key not configured on server"})
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = "en"
	}

	reply, err := h.llm.Chat(c.Request.Context(), req.Message, req.AnalysisData, lang)
	if err != nil {
		h.logger.Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "reply": reply})
}
