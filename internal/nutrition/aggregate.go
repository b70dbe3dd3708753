package nutrition

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// FoodItem is one food from an analysis request with its quantity in
// grams.
type FoodItem struct {
	Name          string
	QuantityGrams float64
}

// FoodNutrient is one nutrient entry returned by a food database,
// valued per 100 g of the food.
type FoodNutrient struct {
	Name  string
	Value float64
	Unit  string
}

// FoodSource looks up the per-100g nutrient entries for a named food.
type FoodSource interface {
	SearchNutrients(ctx context.Context, food string) ([]FoodNutrient, error)
}

// Totals maps each tracked nutrient to its accumulated amount in
// milligrams.
type Totals map[Nutrient]float64

// Display renders the totals keyed by display name with amounts in
// each nutrient's conventional unit.
func (t Totals) Display() map[string]string {
	out := make(map[string]string, len(t))
	for n, mg := range t {
		out[string(n)] = formatAmount(mg, n)
	}
	return out
}

// Aggregator sums tracked nutrients over a list of foods.
type Aggregator struct {
	source FoodSource
	logger *zap.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(source FoodSource, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		source: source,
		logger: logger,
	}
}

// Totals looks up each food and accumulates its tracked nutrients,
// scaled from per-100g values to the requested quantity. Items with a
// blank name or non-positive quantity are skipped without a lookup;
// failed lookups are logged and contribute nothing.
func (a *Aggregator) Totals(ctx context.Context, items []FoodItem) Totals {
	totals := make(Totals)

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.QuantityGrams <= 0 {
			continue
		}

		entries, err := a.source.SearchNutrients(ctx, name)
		if err != nil {
			a.logger.Warn("food lookup failed",
				zap.String("food", name), zap.Error(err))
			continue
		}

		scale := item.QuantityGrams / 100.0
		for _, entry := range entries {
			nutrient, ok := Match(entry.Name)
			if !ok {
				continue
			}
			totals[nutrient] += ToMilligrams(entry.Value, entry.Unit) * scale
		}
	}

	return totals
}
