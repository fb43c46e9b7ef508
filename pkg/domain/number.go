package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that accepts permissive numeric input: JSON numbers,
// integers, and numeric strings all bind; anything else is a validation error.
type Number float64

func (n Number) Float() float64 {
	return float64(n)
}

// IsIntegral reports whether the value is a whole number.
func (n Number) IsIntegral() bool {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return f == math.Trunc(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return NewValidationError("value must be a number")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return NewValidationError("value must be a number")
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return NewValidationError("value %q is not a valid number", s)
		}

		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return NewValidationError("value %s is not a valid number", raw)
	}

	*n = Number(f)
	return nil
}
