package nutrition

import "github.com/nutriscope/backend/internal/types"

const (
	maxRecommendations = 10
	hotWeatherCutoffC  = 30.0
)

// recommendedFoods lists food suggestions per nutrient with the
// approximate amount of that nutrient a serving provides.
var recommendedFoods = map[Nutrient][]types.Recommendation{
	Protein:  {{Food: "Chicken", Amount: "27 g"}, {Food: "Eggs", Amount: "13 g"}, {Food: "Paneer", Amount: "18 g"}},
	Iron:     {{Food: "Spinach", Amount: "2.7 mg"}, {Food: "Liver", Amount: "6.5 mg"}, {Food: "Beans", Amount: "3.7 mg"}},
	Calcium:  {{Food: "Milk", Amount: "120 mg"}, {Food: "Curd", Amount: "80 mg"}, {Food: "Almonds", Amount: "75 mg"}},
	Fiber:    {{Food: "Oats", Amount: "10 g"}, {Food: "Apple", Amount: "4.5 g"}, {Food: "Carrots", Amount: "3 g"}},
	VitaminC: {{Food: "Orange", Amount: "53 mg"}, {Food: "Guava", Amount: "200 mg"}, {Food: "Kiwi", Amount: "90 mg"}},
}

// Recommend assembles food suggestions for the deficient nutrients
// plus a pair of weather-appropriate foods, capped at ten entries.
// Missing weather is treated as cold.
func Recommend(deficient map[Nutrient]string, weather *types.WeatherSnapshot) []types.Recommendation {
	var recs []types.Recommendation
	for _, n := range scoringOrder {
		if _, ok := deficient[n]; ok {
			recs = append(recs, recommendedFoods[n]...)
		}
	}

	weatherFoods := []string{"Soup", "Eggs"}
	if weather != nil && weather.TempC.Float64() > hotWeatherCutoffC {
		weatherFoods = []string{"Cucumber", "Yogurt"}
	}
	for _, food := range weatherFoods {
		recs = append(recs, types.Recommendation{Food: food, Amount: "-"})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
