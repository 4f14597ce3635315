package command

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Millisecond counts per unit. A month is a twelfth of the 365.25-day year,
// so "12 months" and "1 year" agree.
const (
	msPerMillisecond int64 = 1
	msPerSecond      int64 = 1000
	msPerMinute      int64 = 60 * msPerSecond
	msPerHour        int64 = 60 * msPerMinute
	msPerDay         int64 = 24 * msPerHour
	msPerWeek        int64 = 7 * msPerDay
	msPerYear        int64 = msPerDay*365 + msPerDay/4
	msPerMonth       int64 = msPerYear / 12
	msPerDecade      int64 = 10 * msPerYear
	msPerCentury     int64 = 10 * msPerDecade
	msPerMillennium  int64 = 10 * msPerCentury
)

var durationUnits = map[string]int64{
	"ms":           msPerMillisecond,
	"msec":         msPerMillisecond,
	"msecs":        msPerMillisecond,
	"millisecond":  msPerMillisecond,
	"milliseconds": msPerMillisecond,
	"s":            msPerSecond,
	"sec":          msPerSecond,
	"secs":         msPerSecond,
	"second":       msPerSecond,
	"seconds":      msPerSecond,
	"m":            msPerMinute,
	"min":          msPerMinute,
	"mins":         msPerMinute,
	"minute":       msPerMinute,
	"minutes":      msPerMinute,
	"h":            msPerHour,
	"hr":           msPerHour,
	"hrs":          msPerHour,
	"hour":         msPerHour,
	"hours":        msPerHour,
	"d":            msPerDay,
	"day":          msPerDay,
	"days":         msPerDay,
	"w":            msPerWeek,
	"wk":           msPerWeek,
	"wks":          msPerWeek,
	"week":         msPerWeek,
	"weeks":        msPerWeek,
	"mo":           msPerMonth,
	"month":        msPerMonth,
	"months":       msPerMonth,
	"y":            msPerYear,
	"yr":           msPerYear,
	"yrs":          msPerYear,
	"year":         msPerYear,
	"years":        msPerYear,
	"decade":       msPerDecade,
	"decades":      msPerDecade,
	"century":      msPerCentury,
	"centuries":    msPerCentury,
	"millennium":   msPerMillennium,
	"millennia":    msPerMillennium,
}

var durationTerm = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]+)`)

// ParseDurationMillis converts a human-readable duration expression such as
// "1 week", "3d", or "1h 30m" into a count of milliseconds. Terms are summed.
// The expression must consist entirely of <number><unit> terms.
func ParseDurationMillis(s string) (int64, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return 0, fmt.Errorf("empty duration")
	}
	var total float64
	for rest != "" {
		m := durationTerm.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("cannot parse duration %q", s)
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse duration %q: %w", s, err)
		}
		unit, ok := durationUnits[strings.ToLower(m[2])]
		if !ok {
			return 0, fmt.Errorf("unknown duration unit %q", m[2])
		}
		total += value * float64(unit)
		rest = strings.TrimSpace(strings.TrimPrefix(rest, m[0]))
	}
	return int64(math.Round(total)), nil
}
