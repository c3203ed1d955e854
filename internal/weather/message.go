package weather

import (
	"fmt"
	"strings"
)

// Message renders merged ranges into the notification text: a header, one
// line per range with its span and worst-case readings, and a closing call
// to action. The caller only builds a message when at least one range
// qualified.
func Message(ranges []Range) string {
	var b strings.Builder
	b.WriteString("☀️  Great bike weather coming up! 🚲\n")
	for _, r := range ranges {
		fmt.Fprintf(&b, "🚴 %s - %s Temp %d F Precipitation %d%% Wind Speed %d mph\n",
			r.StartTime, r.EndTime, r.Temperature, r.Precipitation, r.MaxWindSpeed)
	}
	b.WriteString("Make a calendar entry and get out there!")
	return b.String()
}
