package appointment

import (
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

// SlotQuery describes a candidate booking of one technician.
type SlotQuery struct {
	Date         time.Time
	Start        schedule.Clock
	Duration     time.Duration
	TechnicianID int64
}

func (q SlotQuery) Interval() Interval {
	d := q.Duration
	if d < time.Minute {
		d = DefaultServiceDuration
	}
	return Interval{Start: q.Start, End: q.Start.Add(d)}
}

type LabelFormat string

const (
	Label24 LabelFormat = "24h"
	Label12 LabelFormat = "12h"
)

type TimeSlot struct {
	Label     string `json:"label"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// HasOverlap reports whether candidate overlaps any of existing.
func HasOverlap(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// BlockingIntervals returns the intervals of technicianID's bookings on date
// that still occupy their slot.
func BlockingIntervals(bookings []Booking, technicianID int64, date time.Time) []Interval {
	var out []Interval
	for _, b := range bookings {
		if b.TechnicianID != technicianID || !SameDay(b.Date, date) || !b.Status.Blocks() {
			continue
		}
		out = append(out, b.Interval())
	}
	return out
}

// IsSlotAvailable is false when the slot has already started or overlaps a
// blocking booking of the same technician on the same date.
func IsSlotAvailable(q SlotQuery, bookings []Booking, now time.Time) bool {
	if !q.Start.On(q.Date).After(now) {
		return false
	}
	return !HasOverlap(q.Interval(), BlockingIntervals(bookings, q.TechnicianID, q.Date))
}

// Availability marks every slot of plan. A slot is available when it has not
// started, the service ends within the plan window and no blocking booking
// overlaps it. tmpl carries the date, duration and technician; its Start is
// ignored.
func Availability(plan SlotPlan, tmpl SlotQuery, bookings []Booking, now time.Time, format LabelFormat) []TimeSlot {
	blocking := BlockingIntervals(bookings, tmpl.TechnicianID, tmpl.Date)

	out := make([]TimeSlot, 0, len(plan.Slots))
	for _, start := range plan.Slots {
		q := tmpl
		q.Start = start

		available := start.On(q.Date).After(now) &&
			IsWithinWorkingHours(plan, q) &&
			!HasOverlap(q.Interval(), blocking)
		out = append(out, TimeSlot{
			Label:     label(start, format),
			Time:      start.String(),
			Available: available,
		})
	}
	return out
}

func label(c schedule.Clock, format LabelFormat) string {
	if format == Label12 {
		return c.Label12()
	}
	return c.String()
}
