// Package duration converts between human-readable duration strings and
// millisecond values.
//
// Strings such as "2 days", "10m" or "-1.5h" parse to a float64 millisecond
// count. Millisecond counts format back to a compact ("2d") or verbose
// ("2 days") string. A year is a fixed 365.25 days; there is no calendar
// arithmetic and no support for compound durations like "1d 2h".
//
//	ms, _ := duration.Parse("2 days")     // 172800000
//	s := duration.FormatShort(172800000)  // "2d"
//	l := duration.FormatLong(172800000)   // "2 days"
//
// All functions are pure and safe for concurrent use.
package duration

import "fmt"

// Millisecond multiples for each unit.
const (
	Millisecond float64 = 1
	Second              = 1000 * Millisecond
	Minute              = 60 * Second
	Hour                = 60 * Minute
	Day                 = 24 * Hour
	Week                = 7 * Day
	Year                = 365.25 * Day
)

// Unit identifies one of the seven duration units.
type Unit uint8

const (
	Milliseconds Unit = iota + 1
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Years
)

// unitSpellings lists every accepted spelling per unit. Matching is done on
// the lower-cased token, so "HOURS" and "Hrs" resolve through the same entry.
var unitSpellings = []struct {
	unit      Unit
	spellings []string
}{
	{Years, []string{"years", "year", "yrs", "yr", "y"}},
	{Weeks, []string{"weeks", "week", "w"}},
	{Days, []string{"days", "day", "d"}},
	{Hours, []string{"hours", "hour", "hrs", "hr", "h"}},
	{Minutes, []string{"minutes", "minute", "mins", "min", "m"}},
	{Seconds, []string{"seconds", "second", "secs", "sec", "s"}},
	{Milliseconds, []string{"milliseconds", "millisecond", "msecs", "msec", "ms"}},
}

var spellingIndex = func() map[string]Unit {
	idx := make(map[string]Unit)
	for _, e := range unitSpellings {
		for _, s := range e.spellings {
			if _, dup := idx[s]; dup {
				panic("duration: spelling registered twice: " + s)
			}
			idx[s] = e.unit
		}
	}
	return idx
}()

// Units returns all units in ascending order of size.
func Units() []Unit {
	return []Unit{Milliseconds, Seconds, Minutes, Hours, Days, Weeks, Years}
}

// Spellings returns the accepted lower-case spellings for u, longest first.
func Spellings(u Unit) []string {
	for _, e := range unitSpellings {
		if e.unit == u {
			out := make([]string, len(e.spellings))
			copy(out, e.spellings)
			return out
		}
	}
	return nil
}

// LookupUnit resolves a spelling such as "Hrs" or "ms" to its unit.
// Only ASCII letters are case-folded.
func LookupUnit(spelling string) (Unit, bool) {
	u, ok := spellingIndex[lowerASCII(spelling)]
	return u, ok
}

// Factor returns the number of milliseconds in one u.
//
// It panics if u has no factor: a unit reachable through the spelling table
// without a case here means the two have drifted apart.
func (u Unit) Factor() float64 {
	switch u {
	case Years:
		return Year
	case Weeks:
		return Week
	case Days:
		return Day
	case Hours:
		return Hour
	case Minutes:
		return Minute
	case Seconds:
		return Second
	case Milliseconds:
		return Millisecond
	default:
		panic(fmt.Sprintf("duration: unit %d was matched, but no matching case exists", u))
	}
}

// Short returns the compact suffix used by FormatShort ("d", "h", "ms").
func (u Unit) Short() string {
	switch u {
	case Years:
		return "y"
	case Weeks:
		return "w"
	case Days:
		return "d"
	case Hours:
		return "h"
	case Minutes:
		return "m"
	case Seconds:
		return "s"
	case Milliseconds:
		return "ms"
	default:
		return ""
	}
}

// Word returns the singular unit word used by FormatLong ("day", "hour").
func (u Unit) Word() string {
	switch u {
	case Years:
		return "year"
	case Weeks:
		return "week"
	case Days:
		return "day"
	case Hours:
		return "hour"
	case Minutes:
		return "minute"
	case Seconds:
		return "second"
	case Milliseconds:
		return "millisecond"
	default:
		return ""
	}
}

// String returns the canonical plural name ("days").
func (u Unit) String() string {
	if w := u.Word(); w != "" {
		return w + "s"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
