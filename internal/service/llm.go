package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nutriscope/backend/config"
	"github.com/nutriscope/backend/internal/types"
)

// GeminiService handles interactions with the Gemini generateContent
// API.
type GeminiService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger *zap.Logger
}

// NewGeminiService creates a new GeminiService instance
func NewGeminiService(cfg *config.Config, logger *zap.Logger) (*GeminiService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
	}

	return &GeminiService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: strings.TrimSuffix(cfg.GeminiAPIURL, "/"),
		model:  cfg.GeminiModel,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the model's reply text.
func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.apiURL, s.model, url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Warn("Gemini API request failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return "", fmt.Errorf("Gemini API request failed with status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Consult asks the model for a narrative diet consultation and returns
// the structured result extracted from its reply alongside the raw
// text.
func (s *GeminiService) Consult(ctx context.Context, profile types.Profile, totals, deficient map[string]string, weather *types.WeatherSnapshot, lang string) (*types.Consultation, error) {
	prompt := BuildConsultPrompt(profile, totals, deficient, weather, lang)

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	consult := ExtractConsultation(raw)
	consult.Raw = raw
	return consult, nil
}

// Chat answers a free-form question using a previous analysis as
// context. The reply is returned verbatim.
func (s *GeminiService) Chat(ctx context.Context, message string, analysis *types.AnalysisContext, lang string) (string, error) {
	prompt := BuildChatPrompt(message, analysis, lang)
	return s.generate(ctx, prompt)
}
