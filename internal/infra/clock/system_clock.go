// Package clock provides the wall-clock implementation of service.Clock.
package clock

import (
	"time"

	"storelocator/config"
	"storelocator/internal/domain/service"

	"github.com/pkg/errors"
)

type systemClock struct {
	location *time.Location
	now      func() time.Time
}

// New creates a clock in the zone configured under directory.timezone.
// An empty zone means the process-local zone.
func New(cfg *config.Config) (service.Clock, error) {
	zone := ""
	if cfg != nil && cfg.Directory != nil {
		zone = cfg.Directory.Timezone
	}

	location := time.Local
	if zone != "" {
		loaded, err := time.LoadLocation(zone)
		if err != nil {
			return nil, errors.Wrapf(err, "load timezone %q", zone)
		}
		location = loaded
	}

	return &systemClock{location: location, now: time.Now}, nil
}

// NewFixed returns a clock frozen at instant, interpreted in location.
func NewFixed(instant time.Time, location *time.Location) service.Clock {
	return &systemClock{
		location: location,
		now:      func() time.Time { return instant },
	}
}

func (c *systemClock) Now() time.Time {
	return c.now().In(c.location)
}

func (c *systemClock) DayOfWeek(t time.Time) time.Weekday {
	return t.In(c.location).Weekday()
}

func (c *systemClock) Location() *time.Location {
	return c.location
}
