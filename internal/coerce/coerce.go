// Package coerce turns loosely typed JSON values into numbers and strings
// without ever failing: anything unusable becomes the caller's fallback.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNumber returns v as a finite float64, or fallback when v is not a finite
// number or a string holding one.
func ToNumber(v any, fallback float64) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		p, err := t.Float64()
		if err != nil {
			return fallback
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fallback
		}
		f = p
	default:
		return fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// ToInt is ToNumber truncated toward zero. Values outside the int64 range
// fall back too.
func ToInt(v any, fallback int64) int64 {
	f := ToNumber(v, math.NaN())
	if math.IsNaN(f) {
		return fallback
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return fallback
	}
	return int64(f)
}

// ToSafeString stringifies the same primitives ToNumber accepts, plus
// bools; nil, maps, slices and non-finite floats yield fallback.
func ToSafeString(v any, fallback string) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fallback
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		if f := float64(t); math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback
		}
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	}
	return fallback
}

// Dig walks decoded JSON following keys (string for objects, int for
// arrays). It returns nil as soon as a step does not exist.
func Dig(v any, path ...any) any {
	cur := v
	for _, p := range path {
		switch k := p.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[k]
		case int:
			a, ok := cur.([]any)
			if !ok || k < 0 || k >= len(a) {
				return nil
			}
			cur = a[k]
		default:
			return nil
		}
	}
	return cur
}

// Has reports whether obj is an object carrying key, whatever its value.
func Has(obj any, key string) bool {
	m, ok := obj.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}
