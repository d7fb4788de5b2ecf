package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

const DefaultGranularity = 15 * time.Minute

// FallbackWindow is used when the business hours cannot be resolved:
// slots from 08:00 to 17:45.
var FallbackWindow = Interval{Start: schedule.At(8, 0), End: schedule.At(18, 0)}

type PlanSource string

const (
	SourceResolved PlanSource = "resolved"
	SourceClosed   PlanSource = "closed"
	SourceFallback PlanSource = "fallback"
)

type FallbackReason string

const (
	ReasonUnparseableHours FallbackReason = "unparseable_hours"
	ReasonNoHours          FallbackReason = "no_hours"
	ReasonClosedDay        FallbackReason = "closed_day"
)

type SlotOptions struct {
	Granularity        time.Duration
	FallbackWhenClosed bool
}

// SlotPlan is the set of candidate start times for one day and how they
// were obtained.
type SlotPlan struct {
	Source PlanSource       `json:"source"`
	Reason FallbackReason   `json:"reason,omitempty"`
	Window Interval         `json:"window"`
	Slots  []schedule.Clock `json:"slots"`
}

func (p SlotPlan) IsFallback() bool {
	return p.Source == SourceFallback
}

// GenerateSlots resolves the opening window for date's weekday and steps
// through it by the granularity. The end of the window is never a slot.
func GenerateSlots(hours schedule.Hours, date time.Time, opts SlotOptions) SlotPlan {
	step := opts.Granularity
	if step < time.Minute {
		step = DefaultGranularity
	}

	day, ok, err := hours.For(date.Weekday())
	switch {
	case errors.Is(err, schedule.ErrNoHours):
		return fallbackPlan(ReasonNoHours, step)
	case err != nil:
		return fallbackPlan(ReasonUnparseableHours, step)
	case !ok || !day.Active:
		if opts.FallbackWhenClosed {
			return fallbackPlan(ReasonClosedDay, step)
		}
		return SlotPlan{Source: SourceClosed, Slots: []schedule.Clock{}}
	case !day.Valid():
		return fallbackPlan(ReasonUnparseableHours, step)
	}

	window := Interval{Start: day.Start, End: day.End}
	return SlotPlan{
		Source: SourceResolved,
		Window: window,
		Slots:  stepThrough(window, step),
	}
}

func fallbackPlan(reason FallbackReason, step time.Duration) SlotPlan {
	return SlotPlan{
		Source: SourceFallback,
		Reason: reason,
		Window: FallbackWindow,
		Slots:  stepThrough(FallbackWindow, step),
	}
}

func stepThrough(w Interval, step time.Duration) []schedule.Clock {
	slots := []schedule.Clock{}
	for c := w.Start; c < w.End; c = c.Add(step) {
		slots = append(slots, c)
	}
	return slots
}
