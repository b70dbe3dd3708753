package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatDecoding(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`150`, 150},
		{`1.5`, 1.5},
		{`"150"`, 150},
		{`"  2.5 "`, 2.5},
		{`"abc"`, 0},
		{`null`, 0},
		{`{"nested":true}`, 0},
		{`[1,2]`, 0},
	}
	for _, tt := range tests {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(tt.in), &f), "input %s", tt.in)
		assert.Equal(t, tt.want, f.Float64(), "input %s", tt.in)
	}
}

func TestWeatherSnapshotTolerantFields(t *testing.T) {
	var snap WeatherSnapshot
	require.NoError(t, json.Unmarshal([]byte(`{"condition":"Mist","temp":"26.1","humidity":79}`), &snap))

	assert.Equal(t, "Mist", snap.Condition)
	assert.Equal(t, 26.1, snap.TempC.Float64())
	assert.Equal(t, 79.0, snap.Humidity.Float64())
}

func TestItemListDecoding(t *testing.T) {
	var l ItemList
	require.NoError(t, json.Unmarshal([]byte(`["oats","milk"]`), &l))
	assert.Equal(t, ItemList{"oats", "milk"}, l)

	require.NoError(t, json.Unmarshal([]byte(`[{"food":"rice"},42]`), &l))
	assert.Len(t, l, 2)

	require.NoError(t, json.Unmarshal([]byte(`"single"`), &l))
	assert.Equal(t, ItemList{"single"}, l)

	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.Nil(t, l)
}
