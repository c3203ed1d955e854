package weather

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

// hour builds a daytime period for the given hour of 2024-05-04 Eastern.
// NWS sends adjacent hours with endTime == next startTime, which the merge
// relies on.
func hour(start, end int, temp, precip int, wind string) Period {
	return Period{
		StartTime:     ts(start),
		EndTime:       ts(end),
		IsDaytime:     true,
		Temperature:   temp,
		Precipitation: precip,
		WindSpeed:     wind,
	}
}

func ts(h int) string {
	return fmt.Sprintf("2024-05-04T%02d:00:00-04:00", h)
}

func TestGoodRangesMergesAdjacentHours(t *testing.T) {
	// Third period fails the temperature bound: it is dropped, not merged.
	periods := []Period{
		hour(8, 9, 60, 10, "10 mph"),
		hour(9, 10, 65, 15, "12 mph"),
		hour(10, 11, 90, 5, "5 mph"),
	}

	got, err := GoodRanges(periods, DefaultThresholds)
	if err != nil {
		t.Fatalf("GoodRanges() returned error: %v", err)
	}
	want := []Range{
		{StartTime: ts(8), EndTime: ts(10), Temperature: 65, Precipitation: 15, MaxWindSpeed: 12},
	}
	if !slices.Equal(got, want) {
		t.Errorf("GoodRanges() = %+v; want %+v", got, want)
	}
}

func TestGoodRangesTracksWorstCaseValues(t *testing.T) {
	// Maxima can come from different periods of the same block.
	periods := []Period{
		hour(8, 9, 70, 25, "5 mph"),
		hour(9, 10, 60, 5, "14 mph"),
		hour(10, 11, 84, 10, "3 mph"),
	}

	got, err := GoodRanges(periods, DefaultThresholds)
	if err != nil {
		t.Fatalf("GoodRanges() returned error: %v", err)
	}
	want := []Range{
		{StartTime: ts(8), EndTime: ts(11), Temperature: 84, Precipitation: 25, MaxWindSpeed: 14},
	}
	if !slices.Equal(got, want) {
		t.Errorf("GoodRanges() = %+v; want %+v", got, want)
	}
}

func TestGoodRangesNeverBridgesGaps(t *testing.T) {
	// The 10-11 hour is rained out, so the qualifying hours on either side
	// must stay separate ranges.
	periods := []Period{
		hour(8, 9, 60, 10, "10 mph"),
		hour(9, 10, 62, 10, "8 mph"),
		hour(10, 11, 61, 80, "9 mph"),
		hour(11, 12, 63, 5, "7 mph"),
	}

	got, err := GoodRanges(periods, DefaultThresholds)
	if err != nil {
		t.Fatalf("GoodRanges() returned error: %v", err)
	}
	want := []Range{
		{StartTime: ts(8), EndTime: ts(10), Temperature: 62, Precipitation: 10, MaxWindSpeed: 10},
		{StartTime: ts(11), EndTime: ts(12), Temperature: 63, Precipitation: 5, MaxWindSpeed: 7},
	}
	if !slices.Equal(got, want) {
		t.Errorf("GoodRanges() = %+v; want %+v", got, want)
	}
}

func TestGoodRangesNonAdjacentStartsNewRange(t *testing.T) {
	// Same weather, different days: no shared boundary timestamp, two ranges.
	saturday := hour(9, 10, 65, 10, "5 mph")
	sunday := saturday
	sunday.StartTime = "2024-05-05T09:00:00-04:00"
	sunday.EndTime = "2024-05-05T10:00:00-04:00"

	got, err := GoodRanges([]Period{saturday, sunday}, DefaultThresholds)
	if err != nil {
		t.Fatalf("GoodRanges() returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GoodRanges() produced %d ranges; want 2", len(got))
	}
	if got[0].EndTime == got[1].StartTime {
		t.Error("ranges share a boundary; a gap should separate them")
	}
}

func TestGoodRangesFiltersDisqualifiedPeriods(t *testing.T) {
	night := hour(2, 3, 60, 10, "5 mph")
	night.IsDaytime = false

	tests := []struct {
		name   string
		period Period
	}{
		{"nighttime", night},
		{"temperature at lower bound", hour(8, 9, 50, 10, "5 mph")},
		{"temperature below lower bound", hour(8, 9, 45, 10, "5 mph")},
		{"temperature at upper bound", hour(8, 9, 85, 10, "5 mph")},
		{"temperature above upper bound", hour(8, 9, 95, 10, "5 mph")},
		{"precipitation at bound", hour(8, 9, 60, 30, "5 mph")},
		{"precipitation above bound", hour(8, 9, 60, 90, "5 mph")},
		{"wind at bound", hour(8, 9, 60, 10, "15 mph")},
		{"wind above bound", hour(8, 9, 60, 10, "10 to 20 mph")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoodRanges([]Period{tt.period}, DefaultThresholds)
			if err != nil {
				t.Fatalf("GoodRanges() returned error: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("GoodRanges() = %+v; want no ranges", got)
			}
		})
	}
}

func TestGoodRangesAcceptsBoundaryNeighbors(t *testing.T) {
	tests := []struct {
		name   string
		period Period
	}{
		{"temperature just above lower bound", hour(8, 9, 51, 10, "5 mph")},
		{"temperature just below upper bound", hour(8, 9, 84, 10, "5 mph")},
		{"precipitation just below bound", hour(8, 9, 60, 29, "5 mph")},
		{"wind just below bound", hour(8, 9, 60, 10, "14 mph")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoodRanges([]Period{tt.period}, DefaultThresholds)
			if err != nil {
				t.Fatalf("GoodRanges() returned error: %v", err)
			}
			if len(got) != 1 {
				t.Errorf("GoodRanges() = %+v; want one range", got)
			}
		})
	}
}

func TestGoodRangesCustomThresholds(t *testing.T) {
	// A looser wind bound admits an hour the defaults reject.
	windy := hour(8, 9, 60, 10, "18 mph")

	loose := DefaultThresholds
	loose.MaxWind = 20

	got, err := GoodRanges([]Period{windy}, loose)
	if err != nil {
		t.Fatalf("GoodRanges() returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("GoodRanges() with loose thresholds = %+v; want one range", got)
	}
	if got[0].MaxWindSpeed != 18 {
		t.Errorf("MaxWindSpeed = %d; want 18", got[0].MaxWindSpeed)
	}
}

func TestGoodRangesEmptyInput(t *testing.T) {
	got, err := GoodRanges(nil, DefaultThresholds)
	if err != nil {
		t.Fatalf("GoodRanges(nil) returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GoodRanges(nil) = %+v; want no ranges", got)
	}
}

func TestGoodRangesWindParseFailureAborts(t *testing.T) {
	// The bad wind text sits on a nighttime hour that would never qualify;
	// the scan must still fail on it.
	night := hour(2, 3, 40, 90, "gusty")
	night.IsDaytime = false
	periods := []Period{
		hour(8, 9, 60, 10, "10 mph"),
		night,
	}

	got, err := GoodRanges(periods, DefaultThresholds)
	if err == nil {
		t.Fatalf("GoodRanges() = %+v, nil error; want wind parse failure", got)
	}
	if !strings.Contains(err.Error(), `"gusty"`) {
		t.Errorf("error %q does not name the offending wind text", err.Error())
	}
}
