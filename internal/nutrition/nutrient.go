package nutrition

import "strings"

// Nutrient identifies one of the tracked nutrients. The value is the
// display name used in API responses and prompts.
type Nutrient string

const (
	Protein  Nutrient = "Protein"
	VitaminC Nutrient = "Vitamin C"
	Iron     Nutrient = "Iron"
	Calcium  Nutrient = "Calcium"
	Fiber    Nutrient = "Fiber"
)

// matchRules maps each tracked nutrient to the lowercase substrings
// that identify it in upstream nutrient names. Order is the match
// order.
var matchRules = []struct {
	nutrient Nutrient
	keys     []string
}{
	{Protein, []string{"protein"}},
	{VitaminC, []string{"vitamin c", "ascorbic acid"}},
	{Iron, []string{"iron"}},
	{Calcium, []string{"calcium"}},
	{Fiber, []string{"fiber", "dietary fiber"}},
}

// Match resolves an upstream nutrient name to a tracked nutrient by
// case-insensitive substring. Names matching no rule are not tracked.
func Match(name string) (Nutrient, bool) {
	lower := strings.ToLower(name)
	for _, rule := range matchRules {
		for _, key := range rule.keys {
			if strings.Contains(lower, key) {
				return rule.nutrient, true
			}
		}
	}
	return "", false
}

// gramBased reports whether the nutrient is conventionally expressed
// in grams rather than milligrams.
func gramBased(n Nutrient) bool {
	return n == Protein || n == Fiber
}

// Unit returns the display unit for the nutrient.
func Unit(n Nutrient) string {
	if gramBased(n) {
		return "g"
	}
	return "mg"
}
