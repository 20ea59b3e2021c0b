//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_Contract(t *testing.T) {
	addr := os.Getenv("PIXEL_WEATHER_STORE_REDISADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	r, err := NewRedis(ctx, addr, 15)
	if err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	defer r.Close()

	key := "pixel-weather-test"
	t.Cleanup(func() { _ = r.Delete(ctx, key) })

	_, err = r.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, r.Set(ctx, key, []byte(`["Paris"]`)))
	got, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `["Paris"]`, string(got))

	prefs := NewPreferencesRepository(r, discardLogger())
	require.NoError(t, prefs.Save(ctx, Preferences{Units: "imperial", DarkMode: false}))
	t.Cleanup(func() { _ = r.Delete(ctx, PreferencesKey) })

	loaded, err := prefs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Preferences{Units: "imperial", DarkMode: false}, loaded)
}
