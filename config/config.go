package config

import (
	"fmt"
	"os"
	"strings"
)

// Defaults for the outbound collaborators; each can be overridden for
// testing against fake upstreams.
const (
	defaultWeatherAPIURL  = "http://api.weatherapi.com/v1/current.json"
	defaultFoodDataAPIURL = "https://api.nal.usda.gov/fdc/v1/foods/search"
	defaultGeminiAPIURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultServerPort     = "8080"
)

// Config holds all configuration for the application. It is built once
// at startup and passed by reference; no component reads the
// environment directly after Load returns.
type Config struct {
	// Server configuration
	ServerPort string

	// Weather provider (mandatory)
	WeatherAPIKey string
	WeatherAPIURL string

	// Food-nutrient provider (mandatory)
	FoodDataAPIKey string
	FoodDataAPIURL string

	// Generative-AI provider (optional; consult/chat degrade to
	// explicit errors when unset)
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string
}

// Load creates a new Config instance from environment variables. API
// keys may alternatively be supplied through *_FILE secret files.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("PORT", defaultServerPort),
		WeatherAPIKey:  secretValue("WEATHER_API_KEY"),
		WeatherAPIURL:  getEnv("WEATHER_API_URL", defaultWeatherAPIURL),
		FoodDataAPIKey: secretValue("USDA_API_KEY"),
		FoodDataAPIURL: getEnv("USDA_API_URL", defaultFoodDataAPIURL),
		GeminiAPIKey:   secretValue("GEMINI_API_KEY"),
		GeminiAPIURL:   getEnv("GEMINI_API_URL", defaultGeminiAPIURL),
		GeminiModel:    getEnv("GEMINI_MODEL", defaultGeminiModel),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// HasGemini reports whether the generative-AI collaborator is
// configured.
func (c *Config) HasGemini() bool {
	return c.GeminiAPIKey != ""
}

// getEnv returns the value of the environment variable or the fallback
// when unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// secretValue reads a credential from the environment, falling back to
// the file named by the corresponding *_FILE variable.
func secretValue(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if path := os.Getenv(key + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
