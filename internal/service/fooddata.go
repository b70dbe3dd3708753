package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nutriscope/backend/config"
	"github.com/nutriscope/backend/internal/nutrition"
)

// FoodDataService queries the food-nutrient database for the
// best-matching record of a free-text food name. Only the first search
// result is used; there is no disambiguation.
type FoodDataService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewFoodDataService creates a new FoodDataService instance
func NewFoodDataService(cfg *config.Config, logger *zap.Logger) *FoodDataService {
	return &FoodDataService{
		apiKey: cfg.FoodDataAPIKey,
		apiURL: cfg.FoodDataAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// fdcNutrient mirrors one nutrient entry of a search hit. The provider
// uses nutrientName/unitName on search results and name/unit on some
// other record types, so both are accepted.
type fdcNutrient struct {
	NutrientName string   `json:"nutrientName"`
	Name         string   `json:"name"`
	Value        *float64 `json:"value"`
	UnitName     string   `json:"unitName"`
	Unit         string   `json:"unit"`
}

// SearchNutrients returns the per-100g nutrient entries of the first
// search hit for a food. An empty result set is not an error; entries
// without a name or value are skipped.
func (s *FoodDataService) SearchNutrients(ctx context.Context, food string) ([]nutrition.FoodNutrient, error) {
	reqURL, err := url.Parse(s.apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse food API URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("api_key", s.apiKey)
	params.Set("query", food)
	params.Set("pageSize", "1")
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
		return nil, fmt.Errorf("food API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Foods []struct {
			FoodNutrients []fdcNutrient `json:"foodNutrients"`
		} `json:"foods"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Foods) == 0 {
		s.logger.Debug("no food record found", zap.String("query", food))
		return nil, nil
	}

	entries := make([]nutrition.FoodNutrient, 0, len(result.Foods[0].FoodNutrients))
	for _, n := range result.Foods[0].FoodNutrients {
		name := n.NutrientName
		if name == "" {
			name = n.Name
		}
		unit := n.UnitName
		if unit == "" {
			unit = n.Unit
		}
		if name == "" || n.Value == nil {
			continue
		}
		entries = append(entries, nutrition.FoodNutrient{
			Name:  strings.TrimSpace(name),
			Value: *n.Value,
			Unit:  unit,
		})
	}
	return entries, nil
}
