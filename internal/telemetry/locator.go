package telemetry

import (
	"context"
	"errors"

	"takatrack-client/internal/models"
)

// ErrLocationUnavailable is returned when the device position cannot be acquired.
var ErrLocationUnavailable = errors.New("location unavailable")

// Locator acquires the device position once.
type Locator interface {
	Locate(ctx context.Context) (models.Position, error)
}

// StaticLocator reports a configured home position. A nil *StaticLocator
// always fails, which is how an unconfigured device behaves.
type StaticLocator struct {
	Lat float64
	Lng float64
}

// NewStaticLocator returns nil unless both coordinates are set.
func NewStaticLocator(lat, lng *float64) *StaticLocator {
	if lat == nil || lng == nil {
		return nil
	}
	return &StaticLocator{Lat: *lat, Lng: *lng}
}

func (l *StaticLocator) Locate(ctx context.Context) (models.Position, error) {
	if l == nil {
		return models.Position{}, ErrLocationUnavailable
	}
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}
	return models.Position{Lat: l.Lat, Lng: l.Lng}, nil
}
