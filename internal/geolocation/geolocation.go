// Package geolocation models the device location capability. A Locator either
// yields coordinates or fails with ErrPermissionDenied.
package geolocation

import (
	"context"
	"errors"

	"pixel-weather/internal/types"
)

var ErrPermissionDenied = errors.New("geolocation permission denied")

type Locator interface {
	Locate(ctx context.Context) (types.Coords, error)
}

// StaticLocator reports fixed coordinates, for example from CLI flags or a
// client that resolved its own position.
type StaticLocator struct {
	coords types.Coords
}

func NewStaticLocator(latitude, longitude float64) *StaticLocator {
	return &StaticLocator{coords: types.NewCoords(latitude, longitude)}
}

func (l *StaticLocator) Locate(ctx context.Context) (types.Coords, error) {
	if err := ctx.Err(); err != nil {
		return types.Coords{}, err
	}
	return l.coords, nil
}

// DeniedLocator always refuses, which is what a client without location
// access looks like.
type DeniedLocator struct{}

func (DeniedLocator) Locate(ctx context.Context) (types.Coords, error) {
	return types.Coords{}, ErrPermissionDenied
}
