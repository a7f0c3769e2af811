package token

import (
	"math"
	"strconv"
)

// ParseInt parses an optional '-' followed by a maximal run of decimal
// digits from the front of d. It returns the value and the number of bytes
// consumed, which is 0 when d does not start with '-' or a digit and 1 when
// d is a lone '-'. ParseInt never fails.
//
// Values beyond the int64 range saturate to math.MaxInt64 or math.MinInt64.
// Digits after the point of saturation are consumed but ignored.
//
//	"e"      -> 0, 0
//	"-e"     -> 0, 1
//	"00:"    -> 0, 2
//	"99..9e" -> math.MaxInt64
//	"-99..9" -> math.MinInt64
func ParseInt(d []byte) (int64, int) {
	var (
		i          = 0
		n          = len(d)
		v          int64
		sign       int64 = 1
		overflowed bool
	)
	if n > 0 && d[0] == Minus {
		sign = -1
		i++
	}
	for ; i < n; i++ {
		c := d[i]
		if !IsDigit(c) {
			break
		}
		if overflowed {
			continue
		}
		prev := v
		v = v*10 + int64(c-'0')*sign
		switch {
		case sign == 1 && (v < prev || v/10 != prev):
			overflowed = true
			v = math.MaxInt64
		case sign == -1 && (v > prev || v/10 != prev):
			overflowed = true
			v = math.MinInt64
		}
	}
	return v, i
}

// IntLen returns the number of bytes strconv.AppendInt(nil, v, 10) produces.
func IntLen(v int64) int {
	if v == math.MinInt64 {
		return len("-9223372036854775808")
	}
	n := 1
	if v < 0 {
		n++
		v = -v
	}
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// AppendInt appends the canonical decimal form of v: no leading zeros and a
// sign only when negative.
func AppendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}
