package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nutriscope/backend/internal/types"
)

// displayOrder fixes the order nutrient lines appear in prompts; keys
// outside the canonical five follow, sorted.
var displayOrder = []string{"Protein", "Vitamin C", "Iron", "Calcium", "Fiber"}

func orderedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for _, k := range displayOrder {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		canonical := false
		for _, c := range displayOrder {
			if k == c {
				canonical = true
				break
			}
		}
		if !canonical {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildConsultPrompt serializes the profile, weather, totals and
// deficiencies into the instruction block for a narrative consultation,
// ending with the JSON output contract the model must honor.
func BuildConsultPrompt(profile types.Profile, totals, deficiencies map[string]string, weather *types.WeatherSnapshot, lang string) string {
	var lines []string
	lines = append(lines, "You are a professional, evidence-based dietitian assistant.")
	lines = append(lines, "Produce a short personalized diet consultation in the requested language.")
	lines = append(lines, "")
	lines = append(lines, "USER PROFILE:")
	lines = append(lines, fmt.Sprintf("- age: %d", profile.Age))
	lines = append(lines, fmt.Sprintf("- gender: %s", profile.Gender))
	lines = append(lines, fmt.Sprintf("- height_cm: %s", formatFloat(profile.HeightCm)))
	lines = append(lines, fmt.Sprintf("- weight_kg: %s", formatFloat(profile.WeightKg)))
	if profile.Activity != "" {
		lines = append(lines, fmt.Sprintf("- activity level: %s", profile.Activity))
	}
	lines = append(lines, "")
	if weather != nil {
		lines = append(lines, "CURRENT WEATHER:")
		lines = append(lines, fmt.Sprintf("- condition: %s", weather.Condition))
		lines = append(lines, fmt.Sprintf("- temp_c: %s", formatFloat(weather.TempC.Float64())))
		lines = append(lines, fmt.Sprintf("- humidity: %s", formatFloat(weather.Humidity.Float64())))
		lines = append(lines, "")
	}
	lines = append(lines, "TOTAL NUTRIENTS (from provided foods):")
	if len(totals) > 0 {
		for _, k := range orderedKeys(totals) {
			lines = append(lines, fmt.Sprintf("- %s: %s", k, totals[k]))
		}
	} else {
		lines = append(lines, "- (no nutrient totals provided)")
	}
	lines = append(lines, "")
	lines = append(lines, "DEFICIENCIES (calculated):")
	if len(deficiencies) > 0 {
		for _, k := range orderedKeys(deficiencies) {
			lines = append(lines, fmt.Sprintf("- %s: need %s more", k, deficiencies[k]))
		}
	} else {
		lines = append(lines, "- (no deficiencies detected)")
	}
	lines = append(lines, "")
	lines = append(lines, "TASK:")
	lines = append(lines, "1) Give a 2-3 sentence summary of the user's situation.")
	lines = append(lines, "2) Provide a 3-meal sample meal plan for today (breakfast, lunch, dinner) with portions.")
	lines = append(lines, "3) For each deficient nutrient, list 1-2 food swaps or additions and approximate portion sizes.")
	lines = append(lines, "4) Provide brief general advice (hydration, timing, and any safety note).")
	lines = append(lines, "5) Output in JSON only with keys: summary (string), meal_plan (list of {meal,name,items}), advice (string).")
	if lang != "" && lang != "en" {
		lines = append(lines, fmt.Sprintf("Respond in the following language: %s", lang))
	}
	lines = append(lines, "")
	lines = append(lines, "Return JSON only. Example:")
	lines = append(lines, `{"summary":"...", "meal_plan":[{"meal":"Breakfast","name":"Oats bowl","items":["..."]}], "advice":"..."}`)
	return strings.Join(lines, "\n")
}

// BuildChatPrompt produces the shorter open-ended chat prompt, reusing
// a previous analysis as context for the user's free-text question.
func BuildChatPrompt(message string, analysis *types.AnalysisContext, lang string) string {
	var lines []string
	lines = append(lines, "You are a helpful and friendly AI Dietician Assistant.")
	lines = append(lines, "Your goal is to answer user questions about their nutrition, suggest meals, and provide advice based on their specific dietary analysis.")
	lines = append(lines, "Use the provided nutrition analysis as the primary context for your answers.")
	lines = append(lines, "")
	lines = append(lines, "--- NUTRITION ANALYSIS CONTEXT ---")
	if analysis != nil && len(analysis.TotalNutrients) > 0 {
		lines = append(lines, "")
		lines = append(lines, "[Total Nutrients]")
		for _, k := range orderedKeys(analysis.TotalNutrients) {
			lines = append(lines, fmt.Sprintf("- %s: %s", k, analysis.TotalNutrients[k]))
		}
	}
	if analysis != nil && len(analysis.Deficient) > 0 {
		lines = append(lines, "")
		lines = append(lines, "[Deficient Nutrients]")
		for _, k := range orderedKeys(analysis.Deficient) {
			lines = append(lines, fmt.Sprintf("- %s: need %s more", k, analysis.Deficient[k]))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "--- END CONTEXT ---")
	lines = append(lines, "")
	lines = append(lines, "Now, please answer the user's question concisely and helpfully.")
	if lang != "" && lang != "en" {
		lines = append(lines, fmt.Sprintf("Respond in the following language: %s", lang))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("User says: %q", message))
	return strings.Join(lines, "\n")
}
