package schedule

import (
	"errors"
	"time"
)

var (
	ErrNoHours          = errors.New("no operating hours")
	ErrUnparseableHours = errors.New("unparseable operating hours")
)

// Format tells how a business published its opening hours.
type Format string

const (
	FormatNone       Format = "none"
	FormatStructured Format = "structured"
	FormatText       Format = "text"
	FormatInvalid    Format = "invalid"
)

// DayHours is the opening window of one weekday. Start < End on the same
// day; windows that cross midnight are not supported.
type DayHours struct {
	Weekday time.Weekday `json:"weekday"`
	Active  bool         `json:"active"`
	Start   Clock        `json:"start"`
	End     Clock        `json:"end"`
}

func (d DayHours) Valid() bool {
	return d.Start >= Midnight && d.Start < d.End && d.End <= EndOfDay
}

// Hours holds either a structured week or the free-text string the business
// typed, e.g. "L-S 10:00-19:00".
type Hours struct {
	Format Format     `json:"format"`
	Days   []DayHours `json:"days,omitempty"`
	Text   string     `json:"text,omitempty"`
}

func Structured(days ...DayHours) Hours {
	return Hours{Format: FormatStructured, Days: days}
}

func Text(s string) Hours {
	return Hours{Format: FormatText, Text: s}
}

// Week returns the per-day entries, parsing free text on demand.
func (h Hours) Week() ([]DayHours, error) {
	switch h.Format {
	case FormatStructured:
		if len(h.Days) == 0 {
			return nil, ErrNoHours
		}
		return h.Days, nil
	case FormatText:
		return ParseTextHours(h.Text)
	case FormatInvalid:
		return nil, ErrUnparseableHours
	default:
		return nil, ErrNoHours
	}
}

// For returns the entry for day. ok is false when the day is not listed.
func (h Hours) For(day time.Weekday) (DayHours, bool, error) {
	week, err := h.Week()
	if err != nil {
		return DayHours{}, false, err
	}

	for _, d := range week {
		if d.Weekday == day {
			return d, true, nil
		}
	}

	return DayHours{}, false, nil
}
