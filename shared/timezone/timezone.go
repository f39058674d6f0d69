// Package timezone keeps every timestamp and calendar date in the marketplace's
// timezone (APP_TIMEZONE, America/Lima by default), whatever the host runs in.
package timezone

import (
	"sync"
	"time"

	"conectapro/config"

	"github.com/rs/zerolog/log"
)

var (
	mu       sync.RWMutex
	location *time.Location
	loadOnce sync.Once
)

// load resolves a location by IANA name, falling back to UTC.
func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Set overrides the application location, e.g. from tests.
func Set(name string) {
	loc := load(name)

	loadOnce.Do(func() {})

	mu.Lock()
	location = loc
	mu.Unlock()
}

// GetLocation returns the application location, reading it from config on first use.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		loc := load(config.Get().App.Timezone)

		mu.Lock()
		location = loc
		mu.Unlock()

		log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
	})

	mu.RLock()
	defer mu.RUnlock()

	return location
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as a wall-clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
