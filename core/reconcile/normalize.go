package reconcile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize renders a raw cell value into its canonical comparison form.
//
// Rules, applied in order: absent (nil) and NaN values become the empty
// string; everything else is rendered as locale-independent text and trimmed
// of leading and trailing whitespace. Interior whitespace and letter case
// are preserved, so " X " equals "X" but "X" never equals "x".
//
// Floats are rendered with the minimal number of digits that round-trips
// the value ('f' format, precision -1), so 1.0 and the integer 1 normalize
// to the same string. This keeps numeric cells from producing false
// mismatches when one extract carries a decimal point the other lacks.
//
// Normalize is total and idempotent: it never fails, and applying it twice
// equals applying it once.
func Normalize(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return normalizeFloat(float64(v), 32)
	case float64:
		return normalizeFloat(v, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// normalizeFloat renders a float at its original precision, so an inexact
// float32 like 0.1 keeps its short decimal form instead of exposing the
// widened float64 representation.
func normalizeFloat(f float64, bits int) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
