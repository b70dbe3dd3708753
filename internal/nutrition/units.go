package nutrition

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToMilligrams normalizes a nutrient amount to milligrams. Unknown
// units pass through unchanged; upstream data is too inconsistent to
// treat them as errors.
func ToMilligrams(amount float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "g", "gram", "grams":
		return amount * 1000.0
	case "mg", "milligram", "milligrams":
		return amount
	default:
		return amount
	}
}

// formatAmount renders a milligram amount in the nutrient's display
// unit, rounded to two decimals with trailing zeros dropped.
func formatAmount(mg float64, n Nutrient) string {
	value := mg
	if gramBased(n) {
		value = mg / 1000.0
	}
	value = math.Round(value*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), Unit(n))
}
