package schedule

import (
	"strings"
	"time"
)

// IsOpenAt reports whether the business is open at t. Both ends of the
// window count as open.
func (h Hours) IsOpenAt(t time.Time) bool {
	d, ok, err := h.For(t.Weekday())
	if err != nil || !ok || !d.Active {
		return false
	}

	now := ClockOf(t)
	return now >= d.Start && now <= d.End
}

// DaysSummary describes on which days the business attends, in the wording
// the app shows on business cards.
func (h Hours) DaysSummary() string {
	week, err := h.Week()
	if err != nil || len(week) == 0 {
		return "Horario no disponible"
	}

	active := make(map[time.Weekday]bool, 7)
	for _, d := range week {
		if d.Active {
			active[d.Weekday] = true
		}
	}

	switch {
	case len(active) == 0:
		return "Cerrado temporalmente"
	case len(active) == 7:
		return "Todos los días"
	case len(active) == 5 && allActive(active, time.Monday, time.Friday):
		return "Lunes a Viernes"
	case len(active) == 6 && allActive(active, time.Monday, time.Saturday):
		return "Lunes a Sábado"
	}

	var names []string
	for _, d := range Week {
		if active[d] {
			names = append(names, string([]rune(SpanishName(d))[:3]))
		}
	}
	return strings.Join(names, ", ")
}

func allActive(active map[time.Weekday]bool, from, to time.Weekday) bool {
	for _, d := range DayRange(from, to) {
		if !active[d] {
			return false
		}
	}
	return true
}

// TodayLabel returns the window for t's weekday, e.g. "09:00 - 18:00".
func (h Hours) TodayLabel(t time.Time) string {
	week, err := h.Week()
	if err != nil || len(week) == 0 {
		return "Horario no disponible"
	}

	d, ok, _ := h.For(t.Weekday())
	if !ok || !d.Active {
		return "Cerrado hoy"
	}

	return d.Start.String() + " - " + d.End.String()
}
