package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/kingishb/good-bike-weather/internal/weather"
)

// Default endpoints and identity. The forecast URL is the NWS hourly
// gridpoint for Takoma Park, MD.
const (
	defaultForecastURL = "https://api.weather.gov/gridpoints/LWX/97,75/forecast/hourly"
	defaultPushoverURL = "https://api.pushover.net/1/messages.json"
	defaultUserAgent   = "github.com/kingishb/good-bike-weather"
)

var validate = validator.New()

// Config holds everything the program reads from its environment. Only the
// Pushover credentials are required; endpoints, the client User-Agent and
// the good-weather thresholds have defaults.
type Config struct {
	PushoverUser  string `env:"PUSHOVER_USER" validate:"required"`
	PushoverToken string `env:"PUSHOVER_TOKEN" validate:"required"`

	ForecastURL string `env:"FORECAST_URL" validate:"required,url"`
	PushoverURL string `env:"PUSHOVER_URL" validate:"required,url"`
	UserAgent   string `env:"USER_AGENT" validate:"required"`

	// Good-weather thresholds; every bound is exclusive.
	MinTemp   int `env:"MIN_TEMP" validate:"ltfield=MaxTemp"`
	MaxTemp   int `env:"MAX_TEMP"`
	MaxPrecip int `env:"MAX_PRECIP" validate:"gte=0,lte=100"`
	MaxWind   int `env:"MAX_WIND" validate:"gte=0"`

	LogLevel slog.Level
}

// Load reads configuration from the environment with defaults for everything
// except the Pushover credentials. A .env file in the working directory is
// honored when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := &Config{
		PushoverUser:  os.Getenv("PUSHOVER_USER"),
		PushoverToken: os.Getenv("PUSHOVER_TOKEN"),
		ForecastURL:   getenvDefault("FORECAST_URL", defaultForecastURL),
		PushoverURL:   getenvDefault("PUSHOVER_URL", defaultPushoverURL),
		UserAgent:     getenvDefault("USER_AGENT", defaultUserAgent),
		MinTemp:       getenvInt("MIN_TEMP", weather.DefaultThresholds.MinTemp),
		MaxTemp:       getenvInt("MAX_TEMP", weather.DefaultThresholds.MaxTemp),
		MaxPrecip:     getenvInt("MAX_PRECIP", weather.DefaultThresholds.MaxPrecip),
		MaxWind:       getenvInt("MAX_WIND", weather.DefaultThresholds.MaxWind),
	}

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Thresholds returns the configured good-weather bounds.
func (c *Config) Thresholds() weather.Thresholds {
	return weather.Thresholds{
		MinTemp:   c.MinTemp,
		MaxTemp:   c.MaxTemp,
		MaxPrecip: c.MaxPrecip,
		MaxWind:   c.MaxWind,
	}
}

// check validates the struct and reports the first invalid field by the
// environment variable that sets it, so a missing credential reads
// "PUSHOVER_TOKEN required".
func (c *Config) check() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name := envName(fe.StructField())
	if fe.Tag() == "required" {
		return fmt.Errorf("%s required", name)
	}
	return fmt.Errorf("invalid %s: fails %q", name, fe.Tag())
}

// envName maps a Config field name to its env tag.
func envName(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok || f.Tag.Get("env") == "" {
		return field
	}
	return f.Tag.Get("env")
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
