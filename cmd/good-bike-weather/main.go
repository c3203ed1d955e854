package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kingishb/good-bike-weather/internal/config"
	"github.com/kingishb/good-bike-weather/internal/logging"
	"github.com/kingishb/good-bike-weather/internal/notify"
	"github.com/kingishb/good-bike-weather/internal/weather"
	"github.com/kingishb/good-bike-weather/internal/weather/providers"
)

const appName = "good-bike-weather"

// version is set at release time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg, version, appName))

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// run executes one fetch → filter → merge → format → send pass. Both
// network calls block without timeout or retry; the scheduler invoking the
// binary owns any watchdog. A forecast with no qualifying hours is a normal
// empty run, not an error, and sends nothing.
func run(ctx context.Context, cfg *config.Config) error {
	client := &http.Client{}

	src := providers.NewNWS(client, cfg.ForecastURL, cfg.UserAgent)
	periods, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch forecast: %w", err)
	}
	slog.Info("fetched hourly forecast", "source", src.Name(), "periods", len(periods))

	ranges, err := weather.GoodRanges(periods, cfg.Thresholds())
	if err != nil {
		return err
	}
	if len(ranges) == 0 {
		slog.Info("no good bike times found")
		return nil
	}
	for _, r := range ranges {
		slog.Debug("good bike weather",
			"start", r.StartTime,
			"end", r.EndTime,
			"temp", r.Temperature,
			"precip", r.Precipitation,
			"wind", r.MaxWindSpeed,
		)
	}

	pusher := notify.NewPushover(client, cfg.PushoverURL, cfg.PushoverToken, cfg.PushoverUser)
	receipt, err := pusher.Send(ctx, weather.Message(ranges))
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	slog.Info("notification sent", "ranges", len(ranges), "status", receipt.Status, "request", receipt.Request)
	return nil
}
