package schedule

import (
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/textnorm"
)

// Week lists weekdays Monday first, the order business hours are written in.
var Week = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var spanishNames = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

var weekdayNames = map[string]time.Weekday{
	"domingo": time.Sunday, "sunday": time.Sunday,
	"lunes": time.Monday, "monday": time.Monday,
	"martes": time.Tuesday, "tuesday": time.Tuesday,
	"miercoles": time.Wednesday, "wednesday": time.Wednesday,
	"jueves": time.Thursday, "thursday": time.Thursday,
	"viernes": time.Friday, "friday": time.Friday,
	"sabado": time.Saturday, "saturday": time.Saturday,
}

// single and short tokens used in free-text hours ("L-S", "Lun-Vie")
var weekdayAbbrev = map[string]time.Weekday{
	"l": time.Monday, "m": time.Tuesday, "mi": time.Wednesday, "x": time.Wednesday,
	"j": time.Thursday, "v": time.Friday, "s": time.Saturday, "d": time.Sunday,
	"lun": time.Monday, "mar": time.Tuesday, "mie": time.Wednesday, "jue": time.Thursday,
	"vie": time.Friday, "sab": time.Saturday, "dom": time.Sunday,
	"mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday, "thu": time.Thursday,
	"fri": time.Friday, "sat": time.Saturday, "sun": time.Sunday,
}

// ParseWeekday resolves Spanish or English day names and abbreviations,
// ignoring case and accents.
func ParseWeekday(name string) (time.Weekday, bool) {
	key := textnorm.Fold(name)
	if d, ok := weekdayNames[key]; ok {
		return d, true
	}
	d, ok := weekdayAbbrev[key]
	return d, ok
}

func SpanishName(d time.Weekday) string {
	return spanishNames[d]
}

// weekIndex is the Monday-first position of d.
func weekIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// DayRange expands from..to in Monday-first order, wrapping past Sunday.
func DayRange(from, to time.Weekday) []time.Weekday {
	i, j := weekIndex(from), weekIndex(to)
	var out []time.Weekday
	for {
		out = append(out, Week[i])
		if i == j {
			return out
		}
		i = (i + 1) % 7
	}
}
