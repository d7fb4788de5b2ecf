package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day expressed as minutes after midnight.
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60
)

var ErrInvalidClock = errors.New("invalid time of day")

var (
	clock24 = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	clock12 = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?\s*m\.?$`)
)

// At builds a Clock from an hour and minute.
func At(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock accepts "HH:MM", "HH:MM:SS", "h:mm am" and "h pm".
func ParseClock(s string) (Clock, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if m := clock24.FindStringSubmatch(v); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		if h > 23 || min > 59 || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		return At(h, min), nil
	}

	if m := clock12.FindStringSubmatch(v); m != nil {
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 || min > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		if h == 12 {
			h = 0
		}
		if m[3] == "p" {
			h += 12
		}
		return At(h, min), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
}

// ClockOf returns the time of day of t in its own location.
func ClockOf(t time.Time) Clock {
	return At(t.Hour(), t.Minute())
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String formats as 24h "15:04".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Wire formats as "15:04:05", the representation the bookings API stores.
func (c Clock) Wire() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour(), c.Minute())
}

// Label12 formats as "3:04 pm".
func (c Clock) Label12() string {
	h := c.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if c.Hour()%24 >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), suffix)
}

func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d/time.Minute)
}

// On places the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
