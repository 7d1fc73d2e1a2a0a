package duration

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf16"
)

// MaxLength is the longest input Parse will attempt to match, counted in
// UTF-16 code units.
const MaxLength = 100

var (
	// ErrTooLong is returned by Parse for input longer than MaxLength.
	ErrTooLong = errors.New("value exceeds the maximum length of 100 characters")
	// ErrNoMatch is returned by ParseDuration when the input is not a duration.
	ErrNoMatch = errors.New("value is not a duration")
	// ErrOutOfRange is returned by ParseDuration when the value does not fit
	// in a time.Duration.
	ErrOutOfRange = errors.New("duration out of range")
)

// Parse converts a duration string to milliseconds.
//
// The accepted form is an optional minus sign, a number ("5", "1.5", ".5"),
// optional spaces and an optional unit in any letter case. A missing unit
// means milliseconds:
//
//	Parse("2h")       // 7200000
//	Parse("1.5 Days") // 129600000
//	Parse("-3")       // -3
//
// Input that does not match returns NaN with a nil error. Input longer than
// MaxLength returns ErrTooLong without being matched.
func Parse(s string) (float64, error) {
	if utf16Len(s) > MaxLength {
		return 0, ErrTooLong
	}

	num, unit, ok := scan(s)
	if !ok {
		return math.NaN(), nil
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// scan only yields digit runs, so anything else is a scanner bug
		panic("duration: scanned number rejected by ParseFloat: " + num)
	}

	u := Milliseconds
	if unit != "" {
		u = spellingIndex[lowerASCII(unit)]
	}
	return n * u.Factor(), nil
}

// scan splits s into its numeric literal and unit token. The whole of s must
// be consumed: [-] digits* [. digits+] | digits+, then spaces, then a unit.
func scan(s string) (num, unit string, ok bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	intDigits := j - i

	if j < len(s) && s[j] == '.' {
		j++
		frac := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == frac {
			return "", "", false
		}
	} else if intDigits == 0 {
		return "", "", false
	}
	num = s[:j]

	for j < len(s) && s[j] == ' ' {
		j++
	}

	unit = s[j:]
	if unit == "" {
		return num, "", true
	}
	if _, known := LookupUnit(unit); !known {
		return "", "", false
	}
	return num, unit, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
