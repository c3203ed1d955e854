package weather

// Thresholds bound what counts as good biking weather. Every bound is
// exclusive: a period on a threshold does not qualify.
type Thresholds struct {
	MinTemp   int // °F, qualify when strictly above
	MaxTemp   int // °F, qualify when strictly below
	MaxPrecip int // percent chance, qualify when strictly below
	MaxWind   int // mph, qualify when strictly below
}

// DefaultThresholds is the tuning the program ships with: daytime between
// 50 °F and 85 °F, under 30% precipitation chance, wind under 15 mph.
var DefaultThresholds = Thresholds{
	MinTemp:   50,
	MaxTemp:   85,
	MaxPrecip: 30,
	MaxWind:   15,
}

// qualifies reports whether p counts as good biking weather under t.
func qualifies(p Period, windSpeed int, t Thresholds) bool {
	return p.IsDaytime &&
		p.Temperature > t.MinTemp && p.Temperature < t.MaxTemp &&
		p.Precipitation < t.MaxPrecip &&
		windSpeed < t.MaxWind
}

// GoodRanges scans hourly periods once, in order, and merges adjacent
// qualifying hours into contiguous ranges. A qualifying period extends the
// open range only when its start time equals the range's end time exactly;
// anything else starts a new range, so dropped hours never bridge two
// ranges. Wind text is parsed before the period is judged: text that does
// not parse aborts the scan even on an hour that would not have qualified.
func GoodRanges(periods []Period, t Thresholds) ([]Range, error) {
	var ranges []Range
	for _, p := range periods {
		wind, err := ParseWindSpeed(p.WindSpeed)
		if err != nil {
			return nil, err
		}
		if !qualifies(p, wind, t) {
			continue
		}

		if n := len(ranges) - 1; n >= 0 && ranges[n].EndTime == p.StartTime {
			ranges[n].EndTime = p.EndTime
			ranges[n].Temperature = max(ranges[n].Temperature, p.Temperature)
			ranges[n].Precipitation = max(ranges[n].Precipitation, p.Precipitation)
			ranges[n].MaxWindSpeed = max(ranges[n].MaxWindSpeed, wind)
			continue
		}

		ranges = append(ranges, Range{
			StartTime:     p.StartTime,
			EndTime:       p.EndTime,
			Temperature:   p.Temperature,
			Precipitation: p.Precipitation,
			MaxWindSpeed:  wind,
		})
	}
	return ranges, nil
}
