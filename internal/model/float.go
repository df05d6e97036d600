package model

import (
	"math"
	"strconv"
)

// Float is a float64 that survives JSON encoding when non-finite.
// Cleaned catalog columns use NaN for "no value"; encoding/json refuses
// NaN and Inf, so those encode as null instead.
type Float float64

// NaN returns the "no value" marker.
func NaN() Float {
	return Float(math.NaN())
}

// Valid reports whether the value is a finite number.
func (f Float) Valid() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MarshalJSON encodes finite values as numbers and NaN/Inf as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(f), 'f', -1, 64), nil
}

// UnmarshalJSON decodes numbers, treating null as NaN.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = NaN()
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
