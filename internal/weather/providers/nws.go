package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kingishb/good-bike-weather/internal/weather"
)

// NWS fetches the hourly forecast for a single National Weather Service
// gridpoint, e.g. https://api.weather.gov/gridpoints/LWX/97,75/forecast/hourly.
// api.weather.gov asks clients to identify themselves, so every request
// carries the configured User-Agent.
type NWS struct {
	name        string
	forecastURL string
	userAgent   string
	client      *http.Client
}

// NewNWS creates a client for the given hourly gridpoint forecast URL.
func NewNWS(client *http.Client, forecastURL, userAgent string) *NWS {
	return &NWS{
		name:        "nws",
		forecastURL: forecastURL,
		userAgent:   userAgent,
		client:      client,
	}
}

func (p *NWS) Name() string {
	return p.name
}

// Fetch retrieves the forecast and returns its hourly periods in the order
// the API sent them. A transport failure, a non-2xx status, or a body
// without the properties.periods structure is an error; an empty periods
// array is a valid forecast with no hours.
func (p *NWS) Fetch(ctx context.Context) ([]weather.Period, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.forecastURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Properties *struct {
			Periods []struct {
				StartTime                  string `json:"startTime"`
				EndTime                    string `json:"endTime"`
				IsDaytime                  bool   `json:"isDaytime"`
				Temperature                int    `json:"temperature"`
				WindSpeed                  string `json:"windSpeed"`
				ProbabilityOfPrecipitation struct {
					Value int `json:"value"`
				} `json:"probabilityOfPrecipitation"`
			} `json:"periods"`
		} `json:"properties"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	if payload.Properties == nil || payload.Properties.Periods == nil {
		return nil, fmt.Errorf("forecast response missing properties.periods")
	}

	periods := make([]weather.Period, 0, len(payload.Properties.Periods))
	for _, wp := range payload.Properties.Periods {
		periods = append(periods, weather.Period{
			StartTime:     wp.StartTime,
			EndTime:       wp.EndTime,
			IsDaytime:     wp.IsDaytime,
			Temperature:   wp.Temperature,
			Precipitation: wp.ProbabilityOfPrecipitation.Value,
			WindSpeed:     wp.WindSpeed,
		})
	}
	return periods, nil
}
