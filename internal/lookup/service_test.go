package lookup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pixel-weather/internal/location"
	"pixel-weather/internal/types"
	"pixel-weather/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByName(t *testing.T) {
	locations := &mockLocations{forward: map[string]types.Location{"Paris": paris}}
	weatherSvc := &mockWeather{}
	observer := &mockObserver{}
	svc := NewLookupService(locations, weatherSvc, nil, observer, 5, discardLogger())

	got, err := svc.LookupByName(context.Background(), "Paris", types.Imperial, 0)
	require.NoError(t, err)

	assert.Equal(t, paris, got.Location)
	assert.Equal(t, types.Imperial, got.Units)
	assert.Equal(t, types.Imperial, got.Current.Units)
	assert.Equal(t, "Paris", got.Current.PlaceName)
	assert.Len(t, got.Forecast, 5)
	assert.Equal(t, paris, weatherSvc.lastLocation)
	assert.Equal(t, 5, weatherSvc.lastDays)
	assert.Equal(t, []string{KindName}, observer.kinds)
	assert.Equal(t, []error{nil}, observer.errs)
}

func TestLookupByName_NotFoundSkipsWeather(t *testing.T) {
	locations := &mockLocations{forward: map[string]types.Location{}}
	weatherSvc := &mockWeather{}
	svc := NewLookupService(locations, weatherSvc, nil, nil, 5, discardLogger())

	got, err := svc.LookupByName(context.Background(), "Nowhereville", types.Metric, 5)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, location.ErrNotFound)
	assert.Zero(t, weatherSvc.currentCalls)
	assert.Zero(t, weatherSvc.forecastCalls)
}

func TestLookupByName_AllOrNothing(t *testing.T) {
	tests := []struct {
		name        string
		currentErr  error
		forecastErr error
		wantErr     error
	}{
		{"current fails", fmt.Errorf("%w: status 500", weather.ErrUpstream), nil, weather.ErrUpstream},
		{"forecast fails", nil, fmt.Errorf("%w: missing daily", weather.ErrMalformedResponse), weather.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := &mockLocations{forward: map[string]types.Location{"Paris": paris}}
			weatherSvc := &mockWeather{currentErr: tt.currentErr, forecastErr: tt.forecastErr}
			observer := &mockObserver{}
			svc := NewLookupService(locations, weatherSvc, nil, observer, 5, discardLogger())

			got, err := svc.LookupByName(context.Background(), "Paris", types.Metric, 5)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, observer.errs, 1)
			assert.Error(t, observer.errs[0])
		})
	}
}

func TestLookupByCoords(t *testing.T) {
	locations := &mockLocations{reverseName: "Brooklyn"}
	weatherSvc := &mockWeather{}
	svc := NewLookupService(locations, weatherSvc, &mockTimezones{zone: "America/New_York"}, nil, 3, discardLogger())

	got, err := svc.LookupByCoords(context.Background(), 40.6782, -73.9442, types.Metric, 0)
	require.NoError(t, err)

	assert.Equal(t, "Brooklyn", got.Location.DisplayName)
	assert.Equal(t, "Brooklyn", got.Current.PlaceName)
	assert.Equal(t, "America/New_York", weatherSvc.lastLocation.Timezone)
	assert.Equal(t, types.NewCoords(40.6782, -73.9442), got.Location.Coordinates)
	assert.Len(t, got.Forecast, 3)
	assert.Equal(t, 1, locations.reverseCalls)
	assert.Zero(t, locations.forwardCalls)
}

func TestLookupByCoords_ReverseFailureUsesPlaceholder(t *testing.T) {
	svc := NewLookupService(&mockLocations{}, &mockWeather{}, nil, nil, 5, discardLogger())

	got, err := svc.LookupByCoords(context.Background(), 10, 20, types.Metric, 5)
	require.NoError(t, err)
	assert.Equal(t, location.FallbackPlaceName, got.Current.PlaceName)
}

func TestLookupByCoords_TimezoneFallback(t *testing.T) {
	weatherSvc := &mockWeather{}
	timezones := &mockTimezones{err: errors.New("no zone over open ocean")}
	svc := NewLookupService(&mockLocations{}, weatherSvc, timezones, nil, 5, discardLogger())

	_, err := svc.LookupByCoords(context.Background(), 0, -140, types.Metric, 5)
	require.NoError(t, err)
	assert.Equal(t, AutoTimezone, weatherSvc.lastLocation.Timezone)
}

func TestLookupByCoords_InvalidCoordinates(t *testing.T) {
	weatherSvc := &mockWeather{}
	locations := &mockLocations{}
	svc := NewLookupService(locations, weatherSvc, nil, nil, 5, discardLogger())

	_, err := svc.LookupByCoords(context.Background(), 91, 0, types.Metric, 5)
	assert.ErrorIs(t, err, location.ErrInvalidLatitude)
	assert.Zero(t, weatherSvc.currentCalls)
	assert.Zero(t, locations.reverseCalls)
}

func TestLookupByCoords_WeatherFailureSkipsReverse(t *testing.T) {
	locations := &mockLocations{reverseName: "Brooklyn"}
	svc := NewLookupService(locations, &mockWeather{forecastErr: weather.ErrUpstream}, nil, nil, 5, discardLogger())

	got, err := svc.LookupByCoords(context.Background(), 40.6782, -73.9442, types.Metric, 5)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, weather.ErrUpstream)
	assert.Zero(t, locations.reverseCalls)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("failed to resolve: %w", location.ErrNotFound), MsgCityNotFound},
		{location.ErrServiceUnavailable, MsgLocationUnavailable},
		{fmt.Errorf("x: %w", weather.ErrUpstream), MsgWeatherUnavailable},
		{weather.ErrMalformedResponse, MsgWeatherUnavailable},
		{location.ErrInvalidLongitude, MsgInvalidCoordinates},
		{context.Canceled, MsgCancelled},
		{errors.New("boom"), MsgGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.err), "Message(%v)", tt.err)
	}
}
