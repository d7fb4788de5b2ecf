package appointment

import "time"

// IsWithinWorkingHours reports whether [start, start+d) fits in the plan's
// window. Closed plans have no window.
func IsWithinWorkingHours(plan SlotPlan, q SlotQuery) bool {
	if plan.Source == SourceClosed {
		return false
	}
	return plan.Window.Contains(q.Interval())
}

// ParseDate parses "2006-01-02" as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, loc)
}
