package weather

// Period is one hour of the NWS hourly gridpoint forecast, reduced to the
// fields the filter looks at. StartTime and EndTime stay RFC3339 strings:
// the API sends adjacent hours with prev.endTime == next.startTime, and
// ranges are merged on that exact string equality.
type Period struct {
	StartTime     string
	EndTime       string
	IsDaytime     bool
	Temperature   int    // °F
	Precipitation int    // probability, percent
	WindSpeed     string // raw text, e.g. "10 to 15 mph"
}

// Range is one or more adjacent qualifying periods merged into a single
// block, keeping the worst temperature, precipitation chance and wind speed
// seen across it.
type Range struct {
	StartTime     string
	EndTime       string
	Temperature   int
	Precipitation int
	MaxWindSpeed  int
}
