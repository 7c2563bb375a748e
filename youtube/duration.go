package youtube

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRegex   = regexp.MustCompile(`(\d+)H`)
	minutesRegex = regexp.MustCompile(`(\d+)M`)
	secondsRegex = regexp.MustCompile(`(\d+)S`)

	// canonicalDurationRegex matches the shapes the Data API emits for
	// contentDetails.duration, e.g. "PT1H2M3S", "PT45S", "P0D".
	canonicalDurationRegex = regexp.MustCompile(`^P(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+S)?)?$`)
)

// ParseDuration converts a "PT#H#M#S" duration into whole seconds.
//
// Each unit is optional and contributes only its first occurrence. Malformed
// or empty input yields 0; use IsCanonicalDuration to tell the two apart.
// The result never overflows: it saturates at math.MaxInt.
func ParseDuration(s string) int {
	s = strings.TrimPrefix(s, "PT")

	total := mulSat(firstUnit(hoursRegex, s), 3600)
	total = addSat(total, mulSat(firstUnit(minutesRegex, s), 60))
	total = addSat(total, firstUnit(secondsRegex, s))
	return total
}

func firstUnit(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// only digits matched, so this is a range error
		return math.MaxInt
	}
	return n
}

func mulSat(a, b int) int {
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// IsCanonicalDuration reports whether s is a well-formed API duration.
func IsCanonicalDuration(s string) bool {
	return s != "" && s != "P" && s != "PT" && canonicalDurationRegex.MatchString(s)
}
