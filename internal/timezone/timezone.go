package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

var fallback = DefaultTimezone

// SetDefault replaces the zone used when a barbershop has none. Invalid
// names are ignored.
func SetDefault(tz string) {
	if IsValid(tz) {
		fallback = tz
	}
}

func Default() string {
	return fallback
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the configured default.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(fallback)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(clock Clock, tz string) time.Time {
	return clock.Now().In(Location(tz))
}
