package weather

import (
	"fmt"
	"regexp"
	"strconv"
)

// windSpeedRE captures the last number before the trailing "mph" unit, so a
// ranged forecast like "10 to 15 mph" parses as its upper bound.
var windSpeedRE = regexp.MustCompile(`(\d+) mph$`)

// ParseWindSpeed extracts the wind speed in mph from NWS wind text such as
// "15 mph" or "10 to 15 mph". Text that does not end in "<number> mph" does
// not parse.
func ParseWindSpeed(text string) (int, error) {
	m := windSpeedRE.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("could not parse wind speed %q", text)
	}
	speed, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("could not parse wind speed %q: %w", text, err)
	}
	return speed, nil
}
