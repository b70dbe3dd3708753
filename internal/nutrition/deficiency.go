package nutrition

import "strings"

// Daily baseline intakes in milligrams, before BMI adjustment.
const (
	baselineProteinMg  = 50000.0
	baselineVitaminCMg = 90.0
	baselineIronFemale = 18.0
	baselineIronOther  = 8.0
	baselineCalciumMg  = 1000.0
	baselineFiberMg    = 30000.0
)

// deficiencyThreshold flags a nutrient when intake is strictly below
// this fraction of the baseline.
const deficiencyThreshold = 0.6

// scoringOrder fixes the iteration order for deficiency scoring and
// recommendation assembly.
var scoringOrder = []Nutrient{Protein, Fiber, VitaminC, Iron, Calcium}

// BMI computes body mass index from height in centimeters and weight
// in kilograms. Non-positive height yields zero.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100.0
	return weightKg / (meters * meters)
}

// Baselines returns the daily baseline intake per nutrient in
// milligrams, adjusted for gender and BMI. Underweight users (BMI
// below 18.5) get a 10% bump, overweight users (BMI above 25) a 10%
// cut; unknown height skips the adjustment.
func Baselines(gender string, heightCm, weightKg float64) map[Nutrient]float64 {
	iron := baselineIronOther
	if strings.ToLower(gender) == "female" {
		iron = baselineIronFemale
	}

	baselines := map[Nutrient]float64{
		Protein:  baselineProteinMg,
		VitaminC: baselineVitaminCMg,
		Iron:     iron,
		Calcium:  baselineCalciumMg,
		Fiber:    baselineFiberMg,
	}

	bmi := BMI(heightCm, weightKg)
	var factor float64
	if bmi > 0 && bmi < 18.5 {
		factor = 1.10
	} else if bmi > 25 {
		factor = 0.90
	}
	if factor != 0 {
		for n := range baselines {
			baselines[n] *= factor
		}
	}

	return baselines
}

// Deficiencies scores the accumulated totals against the user's
// baselines and returns the shortfall for each deficient nutrient,
// formatted for display. Only nutrients with an accumulated reading
// are scored; foods that never mention a nutrient say nothing about
// its intake.
func Deficiencies(totals Totals, gender string, heightCm, weightKg float64) map[Nutrient]string {
	baselines := Baselines(gender, heightCm, weightKg)

	deficient := make(map[Nutrient]string)
	for _, n := range scoringOrder {
		have, ok := totals[n]
		if !ok {
			continue
		}
		need := baselines[n]
		if have < need*deficiencyThreshold {
			deficient[n] = formatAmount(need-have, n)
		}
	}
	return deficient
}
