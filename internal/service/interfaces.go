package service

import (
	"context"

	"github.com/nutriscope/backend/internal/types"
)

// IWeatherService defines the interface for current-weather lookups
type IWeatherService interface {
	Current(ctx context.Context, city string) (*types.WeatherSnapshot, error)
}

// IConsultService defines the interface for generative-AI consultation
// and chat operations
type IConsultService interface {
	Consult(ctx context.Context, profile types.Profile, totals, deficient map[string]string, weather *types.WeatherSnapshot, lang string) (*types.Consultation, error)
	Chat(ctx context.Context, message string, analysis *types.AnalysisContext, lang string) (string, error)
}
