package store

import (
	"context"
	"testing"

	"pixel-weather/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_DefaultsWhenMissing(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			repo := NewPreferencesRepository(kv, discardLogger())

			got, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Preferences{Units: types.Metric, DarkMode: true}, got)
		})
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewPreferencesRepository(kv, discardLogger())

			want := Preferences{Units: types.Imperial, DarkMode: false}
			require.NoError(t, repo.Save(ctx, want))

			got, err := NewPreferencesRepository(kv, discardLogger()).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			raw, err := kv.Get(ctx, PreferencesKey)
			require.NoError(t, err)
			assert.JSONEq(t, `{"units":"imperial","isDarkMode":false}`, string(raw))
		})
	}
}

func TestPreferences_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Preferences
	}{
		{"not json", `{units`, DefaultPreferences()},
		{"wrong shape", `["imperial"]`, DefaultPreferences()},
		{"unknown units", `{"units":"kelvin","isDarkMode":false}`, Preferences{Units: types.Metric, DarkMode: false}},
		{"dark mode absent", `{"units":"imperial"}`, Preferences{Units: types.Imperial, DarkMode: true}},
		{"empty object", `{}`, DefaultPreferences()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemory()
			require.NoError(t, kv.Set(ctx, PreferencesKey, []byte(tt.raw)))

			got, err := NewPreferencesRepository(kv, discardLogger()).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferences_SaveNormalizesUnits(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferencesRepository(NewMemory(), discardLogger())

	require.NoError(t, repo.Save(ctx, Preferences{Units: "rankine", DarkMode: true}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Metric, got.Units)
}
