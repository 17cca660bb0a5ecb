package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceID turns a decoded JSON value or a path segment into a positive id.
// Anything that is not a whole positive number yields 0, which matches no row.
func CoerceID(v interface{}) uint {
	switch x := v.(type) {
	case float64:
		return fromFloat(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return fromFloat(f)
	case string:
		return ParseID(x)
	case int:
		if x > 0 {
			return uint(x)
		}
	case uint:
		return x
	}
	return 0
}

func ParseID(s string) uint {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return fromFloat(f)
}

func fromFloat(f float64) uint {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0
	}
	return uint(f)
}
