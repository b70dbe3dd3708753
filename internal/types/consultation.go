package types

import (
	"encoding/json"
	"fmt"
)

// ItemList is a list of meal-plan item strings. Models sometimes emit
// items as objects or numbers instead of strings; anything non-string
// is flattened to its textual form rather than rejected.
type ItemList []string

func (l *ItemList) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err == nil {
		*l = strs
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err == nil {
		items := make([]string, 0, len(raw))
		for _, v := range raw {
			items = append(items, fmt.Sprintf("%v", v))
		}
		*l = items
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = []string{single}
		return nil
	}

	*l = nil
	return nil
}

// MealPlanEntry is one meal in a generated plan.
type MealPlanEntry struct {
	Meal  string   `json:"meal"`
	Name  string   `json:"name"`
	Items ItemList `json:"items"`
}

// Consultation is the structured diet consultation extracted from a
// model reply. Raw keeps the unparsed reply text for clients that want
// to render it directly.
type Consultation struct {
	Summary  string          `json:"summary"`
	MealPlan []MealPlanEntry `json:"meal_plan"`
	Advice   string          `json:"advice"`
	Raw      string          `json:"raw"`
}
