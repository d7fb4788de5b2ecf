package appointment

import "time"

type CalendarDay struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Today    bool   `json:"today"`
	Bookable bool   `json:"bookable"`
}

// MonthGrid returns every day from the Sunday starting the week of the 1st
// through the Saturday ending the week of the last day of month.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsDateBookable is true for today and any later day.
func IsDateBookable(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	y, m, d = date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	return !day.Before(today)
}

func Calendar(year int, month time.Month, now time.Time) []CalendarDay {
	grid := MonthGrid(year, month, now.Location())

	out := make([]CalendarDay, 0, len(grid))
	for _, d := range grid {
		out = append(out, CalendarDay{
			Date:     d.Format(time.DateOnly),
			Day:      d.Day(),
			InMonth:  d.Month() == month,
			Today:    SameDay(d, now),
			Bookable: IsDateBookable(d, now),
		})
	}
	return out
}
