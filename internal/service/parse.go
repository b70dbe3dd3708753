package service

import (
	"encoding/json"
	"strings"

	"github.com/nutriscope/backend/internal/types"
)

// ExtractConsultation pulls the structured consultation out of raw
// model text. The model is instructed to reply with JSON only, but is
// not trusted: the first substring spanning the outermost '{' and the
// last '}' is tried as JSON, and on any failure the whole trimmed text
// becomes the summary. This is lossy but never errors.
func ExtractConsultation(text string) *types.Consultation {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var parsed types.Consultation
		if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err == nil {
			if parsed.MealPlan == nil {
				parsed.MealPlan = []types.MealPlanEntry{}
			}
			return &parsed
		}
	}

	return &types.Consultation{
		Summary:  strings.TrimSpace(text),
		MealPlan: []types.MealPlanEntry{},
	}
}
