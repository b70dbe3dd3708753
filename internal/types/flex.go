package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates sloppy JSON: plain numbers,
// numeric strings, and anything else (null, objects, garbage strings)
// which coerces to zero. Decoding never fails.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*f = FlexFloat(parsed)
			return nil
		}
	}

	*f = 0
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
