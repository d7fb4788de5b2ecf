package appointment

import (
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

const DefaultServiceDuration = 15 * time.Minute

// Interval is a half-open [Start, End) span within one day.
type Interval struct {
	Start schedule.Clock `json:"start"`
	End   schedule.Clock `json:"end"`
}

// Overlaps reports whether the two half-open intervals share any minute.
// Back-to-back intervals do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether b lies entirely within a.
func (a Interval) Contains(b Interval) bool {
	return b.Start >= a.Start && b.End <= a.End
}

type Booking struct {
	ID           int64          `json:"id"`
	ClientID     int64          `json:"client_id"`
	TechnicianID int64          `json:"technician_id"`
	ServiceID    int64          `json:"service_id"`
	Date         time.Time      `json:"date"`
	Start        schedule.Clock `json:"start_time"`
	End          schedule.Clock `json:"end_time"`
	Status       Status         `json:"status"`
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// NewBooking is a booking about to be submitted upstream.
type NewBooking struct {
	ClientID     int64
	TechnicianID int64
	ServiceID    int64
	Date         time.Time
	Start        schedule.Clock
	End          schedule.Clock
	Status       Status
}

type Technician struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
}

type Service struct {
	ID              int64   `json:"id"`
	BusinessID      int64   `json:"business_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// Duration falls back to DefaultServiceDuration when the service has none.
func (s Service) Duration() time.Duration {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDuration
	}
	return time.Duration(s.DurationMinutes) * time.Minute
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SameDay compares calendar days, each in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
