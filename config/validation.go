package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the mandatory provider credentials are present.
// The weather and food-database keys abort startup when missing; the
// Gemini key is optional and only disables the consult/chat routes.
func Validate(cfg *Config) error {
	var errors []string

	if cfg.WeatherAPIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "WEATHER_API_KEY",
			Message: "weather provider API key is required (set WEATHER_API_KEY or WEATHER_API_KEY_FILE)",
		}.Error())
	}
	if cfg.FoodDataAPIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "USDA_API_KEY",
			Message: "food-nutrient provider API key is required (set USDA_API_KEY or USDA_API_KEY_FILE)",
		}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
