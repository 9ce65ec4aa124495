package validation

import (
	"math"
	"strconv"
)

// LooseInt converts arbitrary text into an integer the lenient way form inputs are usually treated.
// Leading whitespace is skipped and the longest numeric prefix (an optional sign, digits and an optional fraction
// and exponent) is converted, truncating toward zero and saturating at the int range.
// Text without a numeric prefix converts to 0, so "12abc" yields 12 and "abc" yields 0.
func LooseInt(raw string) int {
	prefix, isFloat := numericPrefix(raw)
	if prefix == "" {
		return 0
	}

	if !isFloat {
		// ParseInt saturates out of range values at the bounds of int
		val, _ := strconv.ParseInt(prefix, 10, 0)
		return int(val)
	}

	val, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !math.IsInf(val, 0) {
		return 0
	}
	switch {
	case math.IsNaN(val):
		return 0
	case val >= math.MaxInt:
		return math.MaxInt
	case val <= math.MinInt:
		return math.MinInt
	}
	return int(val)
}

// numericPrefix extracts the longest numeric prefix of raw after leading whitespace.
// isFloat reports whether the prefix contains a fraction or an exponent.
func numericPrefix(raw string) (prefix string, isFloat bool) {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	start := i
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}

	intDigits := countDigits(raw[i:])
	i += intDigits

	fracDigits := 0
	if i < len(raw) && raw[i] == '.' {
		fracDigits = countDigits(raw[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
			isFloat = true
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return "", false
	}

	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < len(raw) && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		if expDigits := countDigits(raw[j:]); expDigits > 0 {
			i = j + expDigits
			isFloat = true
		}
	}
	return raw[start:i], isFloat
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
