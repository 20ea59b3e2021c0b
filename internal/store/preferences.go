package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"pixel-weather/internal/types"
)

const PreferencesKey = "weatherAppSettings"

// Preferences is the persisted display configuration.
type Preferences struct {
	Units    types.UnitSystem `json:"units"`
	DarkMode bool             `json:"isDarkMode"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Units:    types.Metric,
		DarkMode: true,
	}
}

// storedPreferences tells an absent isDarkMode apart from false.
type storedPreferences struct {
	Units    string `json:"units"`
	DarkMode *bool  `json:"isDarkMode"`
}

type PreferencesRepository struct {
	kv     KV
	logger *slog.Logger
}

func NewPreferencesRepository(kv KV, logger *slog.Logger) *PreferencesRepository {
	return &PreferencesRepository{
		kv:     kv,
		logger: logger.With("component", "preferences"),
	}
}

// Load returns the stored preferences. Missing or unreadable data yields the
// defaults field by field; only backend failures are returned as errors.
func (r *PreferencesRepository) Load(ctx context.Context) (Preferences, error) {
	prefs := DefaultPreferences()

	raw, err := r.kv.Get(ctx, PreferencesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("failed to load preferences: %w", err)
	}

	var stored storedPreferences
	if err := json.Unmarshal(raw, &stored); err != nil {
		r.logger.Warn("ignoring malformed preferences", "error", err)
		return prefs, nil
	}

	if units := types.UnitSystem(stored.Units); units.Valid() {
		prefs.Units = units
	} else if stored.Units != "" {
		r.logger.Warn("ignoring unknown unit system", "units", stored.Units)
	}
	if stored.DarkMode != nil {
		prefs.DarkMode = *stored.DarkMode
	}

	return prefs, nil
}

// Save writes the whole record. An invalid unit system is replaced by metric.
func (r *PreferencesRepository) Save(ctx context.Context, prefs Preferences) error {
	if !prefs.Units.Valid() {
		prefs.Units = types.Metric
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := r.kv.Set(ctx, PreferencesKey, raw); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
