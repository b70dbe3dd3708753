package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/nutriscope/backend/config"
	"github.com/nutriscope/backend/internal/types"
)

// WeatherService fetches current conditions from the weather provider.
// Lookups are fresh per request; nothing is cached or retried.
type WeatherService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewWeatherService creates a new WeatherService instance
func NewWeatherService(cfg *config.Config, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		apiKey: cfg.WeatherAPIKey,
		apiURL: cfg.WeatherAPIURL,
		client: &http.Client{Timeout: 8 * time.Second},
		logger: logger,
	}
}

// Current looks up the current conditions for a city.
func (s *WeatherService) Current(ctx context.Context, city string) (*types.WeatherSnapshot, error) {
	reqURL, err := url.Parse(s.apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse weather API URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("key", s.apiKey)
	params.Set("q", city)
	params.Set("aqi", "no")
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Current struct {
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
			TempC    float64 `json:"temp_c"`
			Humidity float64 `json:"humidity"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &types.WeatherSnapshot{
		Condition: result.Current.Condition.Text,
		TempC:     types.FlexFloat(result.Current.TempC),
		Humidity:  types.FlexFloat(result.Current.Humidity),
	}, nil
}
