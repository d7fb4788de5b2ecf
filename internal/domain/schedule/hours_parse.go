package schedule

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/BruksfildServices01/nearbiz/internal/textnorm"
)

// DecodeHours turns the raw HorarioAtencion value into Hours. It accepts a
// JSON array of day entries, the same array serialized into a JSON string
// (possibly with escaped quotes), or free text.
func DecodeHours(raw json.RawMessage) Hours {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return Hours{Format: FormatNone}
	}
	return DecodeHoursString(s)
}

// DecodeHoursString is DecodeHours for a value that is already a string.
func DecodeHoursString(s string) Hours {
	s = strings.TrimSpace(s)
	if s == "" {
		return Hours{Format: FormatNone}
	}

	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			return DecodeHoursString(inner)
		}
		s = strings.TrimSpace(strings.Trim(strings.ReplaceAll(s, `\"`, `"`), `"`))
		if s == "" {
			return Hours{Format: FormatNone}
		}
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		if days, ok := decodeDayEntries(s); ok {
			return Structured(days...)
		}

		unescaped := strings.Trim(strings.ReplaceAll(s, `\"`, `"`), `"`)
		if days, ok := decodeDayEntries(unescaped); ok {
			return Structured(days...)
		}

		return Hours{Format: FormatInvalid, Text: s}
	}

	first := []rune(s)[0]
	if unicode.IsLetter(first) || unicode.IsDigit(first) {
		return Text(s)
	}

	return Hours{Format: FormatInvalid, Text: s}
}

func decodeDayEntries(s string) ([]DayHours, bool) {
	var entries []map[string]any
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		var single map[string]any
		if err := json.Unmarshal([]byte(s), &single); err != nil {
			return nil, false
		}
		entries = []map[string]any{single}
	}

	days := make([]DayHours, 0, len(entries))
	for _, e := range entries {
		if d, ok := decodeDayEntry(e); ok {
			days = append(days, d)
		}
	}

	return days, true
}

func decodeDayEntry(e map[string]any) (DayHours, bool) {
	fields := make(map[string]any, len(e))
	for k, v := range e {
		fields[textnorm.Key(k)] = v
	}

	name, _ := firstOf(fields, "dia", "day", "weekday").(string)
	day, ok := ParseWeekday(name)
	if !ok {
		return DayHours{}, false
	}

	startStr, _ := firstOf(fields, "inicio", "start", "apertura", "horainicio").(string)
	endStr, _ := firstOf(fields, "fin", "end", "cierre", "horafin").(string)

	active := true
	if v, present := lookup(fields, "activo", "active", "abierto"); present {
		active = truthy(v)
	}

	if !active && (startStr == "" || endStr == "") {
		return DayHours{Weekday: day}, true
	}

	start, err := ParseClock(startStr)
	if err != nil {
		return DayHours{}, false
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return DayHours{}, false
	}

	d := DayHours{Weekday: day, Active: active, Start: start, End: end}
	if active && !d.Valid() {
		return DayHours{}, false
	}

	return d, true
}

func firstOf(fields map[string]any, keys ...string) any {
	v, _ := lookup(fields, keys...)
	return v
}

func lookup(fields map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch textnorm.Fold(t) {
		case "true", "1", "si", "yes":
			return true
		}
	}
	return false
}

const (
	dayPart  = `(?:([a-z]+)(?:(?:\s*-\s*|\s+a\s+)([a-z]+))?\s+)?`
	time12   = `\d{1,2}(?::\d{2})?\s*[ap]\.?\s*m\.?`
	rangeSep = `(?:\s*-\s*|\s+(?:a|to)\s+)`
)

var (
	textHours24 = regexp.MustCompile(`^` + dayPart + `(\d{1,2}:\d{2})` + rangeSep + `(\d{1,2}:\d{2})$`)
	textHours12 = regexp.MustCompile(`^` + dayPart + `(` + time12 + `)` + rangeSep + `(` + time12 + `)$`)
	textClosed  = regexp.MustCompile(`^([a-z]+)(?:(?:\s*-\s*|\s+a\s+)([a-z]+))?\s*:?\s*(?:cerrado|closed)$`)
	segmentSep  = regexp.MustCompile(`[,;\n]+`)
)

// ParseTextHours reads free-text hours such as "L-S 10:00-19:00",
// "L-V 9:00 a 18:00", "9 am - 6 pm" or several of them separated by commas.
// A segment without days applies to the whole week. "D cerrado" marks days
// closed. Later segments override earlier ones for the same day.
func ParseTextHours(text string) ([]DayHours, error) {
	folded := textnorm.Fold(text)
	if folded == "" {
		return nil, ErrNoHours
	}

	byDay := make(map[int]DayHours, 7)
	for _, seg := range segmentSep.Split(folded, -1) {
		seg = strings.Join(strings.Fields(seg), " ")
		if seg == "" {
			continue
		}

		days, err := parseTextSegment(seg)
		if err != nil {
			return nil, err
		}
		for _, d := range days {
			byDay[weekIndex(d.Weekday)] = d
		}
	}

	if len(byDay) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableHours, text)
	}

	out := make([]DayHours, 0, len(byDay))
	for i := range Week {
		if d, ok := byDay[i]; ok {
			out = append(out, d)
		}
	}

	return out, nil
}

func parseTextSegment(seg string) ([]DayHours, error) {
	if m := textClosed.FindStringSubmatch(seg); m != nil {
		days, err := segmentDays(m[1], m[2])
		if err != nil {
			return nil, err
		}
		out := make([]DayHours, 0, len(days))
		for _, d := range days {
			out = append(out, DayHours{Weekday: d})
		}
		return out, nil
	}

	m := textHours24.FindStringSubmatch(seg)
	if m == nil {
		m = textHours12.FindStringSubmatch(seg)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnparseableHours, seg)
	}

	start, err := ParseClock(m[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableHours, err)
	}
	end, err := ParseClock(m[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableHours, err)
	}
	if end <= start {
		return nil, fmt.Errorf("%w: %q ends before it starts", ErrUnparseableHours, seg)
	}

	days := Week
	if m[1] != "" {
		if days, err = segmentDays(m[1], m[2]); err != nil {
			return nil, err
		}
	}

	out := make([]DayHours, 0, len(days))
	for _, d := range days {
		out = append(out, DayHours{Weekday: d, Active: true, Start: start, End: end})
	}
	return out, nil
}

// segmentDays resolves "l", "l-v" or "lunes a viernes". to may be empty.
func segmentDays(from, to string) ([]time.Weekday, error) {
	first, ok := ParseWeekday(from)
	if !ok {
		return nil, fmt.Errorf("%w: unknown day %q", ErrUnparseableHours, from)
	}
	last := first
	if to != "" {
		if last, ok = ParseWeekday(to); !ok {
			return nil, fmt.Errorf("%w: unknown day %q", ErrUnparseableHours, to)
		}
	}
	return DayRange(first, last), nil
}
