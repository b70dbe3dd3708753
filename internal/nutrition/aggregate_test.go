package nutrition

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeFoodSource serves canned nutrient entries per food name.
type fakeFoodSource struct {
	records map[string][]FoodNutrient
	err     error
	calls   []string
}

func (f *fakeFoodSource) SearchNutrients(_ context.Context, food string) ([]FoodNutrient, error) {
	f.calls = append(f.calls, food)
	if f.err != nil {
		return nil, f.err
	}
	return f.records[food], nil
}

func bananaSource() *fakeFoodSource {
	return &fakeFoodSource{records: map[string][]FoodNutrient{
		"banana": {
			{Name: "Protein", Value: 1.1, Unit: "g"},
			{Name: "Fiber, total dietary", Value: 2.6, Unit: "g"},
			{Name: "Total lipid (fat)", Value: 0.3, Unit: "g"},
			{Name: "Vitamin C, total ascorbic acid", Value: 8.7, Unit: "mg"},
		},
	}}
}

func TestAggregatorScalesPer100g(t *testing.T) {
	agg := NewAggregator(bananaSource(), zap.NewNop())

	totals := agg.Totals(context.Background(), []FoodItem{{Name: "banana", QuantityGrams: 150}})

	require.Contains(t, totals, Protein)
	assert.InDelta(t, 1650.0, totals[Protein], 1e-9) // 1.1 g/100g * 1.5 -> mg
	assert.InDelta(t, 3900.0, totals[Fiber], 1e-9)
	assert.InDelta(t, 13.05, totals[VitaminC], 1e-9) // already mg
	// Untracked nutrients are dropped
	assert.Len(t, totals, 3)
}

func TestAggregatorLinearity(t *testing.T) {
	split := NewAggregator(bananaSource(), zap.NewNop()).Totals(context.Background(), []FoodItem{
		{Name: "banana", QuantityGrams: 60},
		{Name: "banana", QuantityGrams: 90},
	})
	combined := NewAggregator(bananaSource(), zap.NewNop()).Totals(context.Background(), []FoodItem{
		{Name: "banana", QuantityGrams: 150},
	})

	require.Equal(t, len(combined), len(split))
	for n, want := range combined {
		assert.InDelta(t, want, split[n], 1e-6, "nutrient %s", n)
	}
}

func TestAggregatorSkipsInvalidItems(t *testing.T) {
	source := bananaSource()
	agg := NewAggregator(source, zap.NewNop())

	totals := agg.Totals(context.Background(), []FoodItem{
		{Name: "", QuantityGrams: 100},
		{Name: "   ", QuantityGrams: 100},
		{Name: "banana", QuantityGrams: 0},
		{Name: "banana", QuantityGrams: -5},
	})

	assert.Empty(t, totals)
	assert.Empty(t, source.calls, "invalid items must not trigger lookups")
}

func TestAggregatorToleratesLookupFailures(t *testing.T) {
	source := bananaSource()
	source.err = errors.New("upstream down")
	agg := NewAggregator(source, zap.NewNop())

	totals := agg.Totals(context.Background(), []FoodItem{{Name: "banana", QuantityGrams: 150}})

	assert.Empty(t, totals)
}

func TestAggregatorUnknownFoodContributesNothing(t *testing.T) {
	agg := NewAggregator(bananaSource(), zap.NewNop())

	totals := agg.Totals(context.Background(), []FoodItem{
		{Name: "unobtainium", QuantityGrams: 100},
		{Name: "banana", QuantityGrams: 100},
	})

	assert.InDelta(t, 1100.0, totals[Protein], 1e-9)
}

func TestTotalsDisplay(t *testing.T) {
	totals := Totals{Protein: 1650.0, Fiber: 3900.0000000000005, VitaminC: 13.05}

	display := totals.Display()

	assert.Equal(t, "1.65 g", display["Protein"])
	assert.Equal(t, "3.9 g", display["Fiber"])
	assert.Equal(t, "13.05 mg", display["Vitamin C"])
}
