package types

// WeatherSnapshot is the current weather for a city, reduced to the
// fields the analysis pipeline uses. Temp and humidity tolerate
// numeric strings from upstream.
type WeatherSnapshot struct {
	Condition string    `json:"condition"`
	TempC     FlexFloat `json:"temp"`
	Humidity  FlexFloat `json:"humidity"`
}

// Profile describes the user the consultation is generated for.
type Profile struct {
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Activity string  `json:"activity"`
}

// Recommendation is one suggested food with its approximate nutrient
// amount, or "-" for weather-driven suggestions.
type Recommendation struct {
	Food   string `json:"food"`
	Amount string `json:"amount"`
}

// AnalysisContext is the client-echoed output of a previous analysis,
// used as grounding context for chat questions.
type AnalysisContext struct {
	TotalNutrients map[string]string `json:"total_nutrients"`
	Deficient      map[string]string `json:"deficient"`
}
