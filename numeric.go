package tokenizer

import (
    "math"
    "strconv"

    "golang.org/x/exp/constraints"
)

// clamp restricts v to the closed interval [lo, hi].
func clamp[T constraints.Float](v, lo, hi T) T {
    if v < lo {
        return lo
    }
    if v > hi {
        return hi
    }
    return v
}

// digitsToFloat interprets a (possibly empty) run of ASCII digits as a
// base-10 integer, returning 0 for an empty string. Values too large for
// float64 saturate to math.MaxFloat64 rather than error, matching the
// CSS Syntax Level 3 number-conversion algorithm's tolerance for
// arbitrarily long digit runs.
func digitsToFloat(digits string) float64 {
    if digits == "" {
        return 0
    }
    v, err := strconv.ParseFloat(digits, 64)
    if err != nil {
        return math.MaxFloat64
    }
    return v
}

// convertStringToNumber implements CSS Syntax Module Level 3, section 4.3:
// it re-parses repr (a string already known to be a valid CSS number
// representation, as produced by consumeNumber) into its sign, integer,
// fractional, and exponent components and combines them into a float64,
// clamped to ±math.MaxFloat64.
func convertStringToNumber(repr string) float64 {
    sc := newScanner([]rune(repr))
    parts, _ := sc.scanNumberStr()

    s := 1.0
    if parts.sign == "-" {
        s = -1
    }

    i := digitsToFloat(parts.integer)
    f := digitsToFloat(parts.fractional)
    d := float64(len(parts.fractional))

    t := 1.0
    if parts.exponentSign == "-" {
        t = -1
    }
    e := digitsToFloat(parts.exponent)

    value := s * (i + f*math.Pow(10, -d)) * math.Pow(10, t*e)
    return clamp(value, -math.MaxFloat64, math.MaxFloat64)
}
