package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pixel-weather/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MemoryStore(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{ForecastDays: 5, DefaultCity: "New York"},
		Upstream: config.UpstreamConfig{
			GeocodingURL:        "http://127.0.0.1:0/v1/search",
			ReverseGeocodingURL: "http://127.0.0.1:0/reverse",
			ForecastURL:         "http://127.0.0.1:0/v1/forecast",
			UserAgent:           "test",
			Timeout:             time.Second,
		},
		Store: config.StoreConfig{Driver: "memory"},
	}

	services, err := Build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer services.Close()

	assert.NotNil(t, services.Lookup)
	assert.NotNil(t, services.Metrics)

	prefs, err := services.Preferences.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "metric", string(prefs.Units))
}

func TestBuild_UnknownStore(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "etcd"}}

	_, err := Build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
