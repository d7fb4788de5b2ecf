package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

var (
	ErrCrossesMidnight = errors.New("booking would end after midnight")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// EndOf returns start+d. Bookings that would reach midnight are rejected.
func EndOf(start schedule.Clock, d time.Duration) (schedule.Clock, error) {
	if d < time.Minute {
		return 0, ErrInvalidDuration
	}
	end := start.Add(d)
	if end >= schedule.EndOfDay {
		return 0, ErrCrossesMidnight
	}
	return end, nil
}

// ComputeEndTime adds durationMinutes to an "HH:MM" start and returns the
// end as "HH:MM:SS".
func ComputeEndTime(start string, durationMinutes int) (string, error) {
	c, err := schedule.ParseClock(start)
	if err != nil {
		return "", fmt.Errorf("start time: %w", err)
	}
	if durationMinutes <= 0 {
		return "", ErrInvalidDuration
	}

	end, err := EndOf(c, time.Duration(durationMinutes)*time.Minute)
	if err != nil {
		return "", err
	}
	return end.Wire(), nil
}
