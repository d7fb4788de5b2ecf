package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Mexico_City"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns the current time in a fixed location.
type Clock func() time.Time

func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}
