package nearbiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
	"github.com/BruksfildServices01/nearbiz/internal/textnorm"
)

// wireTime matches SQL time columns ("10:00:00.0000000") and ISO datetimes
// ("2026-03-09T10:00:00Z") and captures the wall-clock part.
var wireTime = regexp.MustCompile(`^(?:\d{4}-\d{2}-\d{2}[tT ])?(\d{1,2}:\d{2}(?::\d{2})?)(?:\.\d+)?(?:[zZ]|[+-]\d{2}:?\d{2})?$`)

// record is one upstream JSON object with its keys folded, so that
// "IdNegocio", "idNegocio" and "id_negocio" all read as "idnegocio".
type record map[string]any

func decodeRecords(data []byte) ([]record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case []any:
		return toRecords(t), nil
	case map[string]any:
		rec := newRecord(t)
		for _, key := range []string{"data", "items", "results", "value"} {
			if list, ok := rec[key].([]any); ok {
				return toRecords(list), nil
			}
		}
		return []record{rec}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected payload %T", v)
	}
}

func toRecords(list []any) []record {
	out := make([]record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, newRecord(m))
		}
	}
	return out
}

func newRecord(m map[string]any) record {
	r := make(record, len(m))
	for k, v := range m {
		r[textnorm.Key(k)] = v
	}
	return r
}

func (r record) value(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r record) str(keys ...string) string {
	v, ok := r.value(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// float accepts JSON numbers and numeric strings.
func (r record) float(keys ...string) (float64, bool) {
	v, ok := r.value(keys...)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func (r record) int(keys ...string) (int64, bool) {
	f, ok := r.float(keys...)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// date reads "2006-01-02", optionally followed by a time part, as UTC
// midnight.
func (r record) date(keys ...string) (time.Time, bool) {
	s := r.str(keys...)
	if len(s) < len(time.DateOnly) {
		return time.Time{}, false
	}
	d, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	return d, err == nil
}

// clock reads a time of day. Fractional seconds, a date prefix and a zone
// suffix are dropped; anything else goes through schedule.ParseClock.
func (r record) clock(keys ...string) (schedule.Clock, error) {
	s := r.str(keys...)
	if m := wireTime.FindStringSubmatch(s); m != nil {
		return schedule.ParseClock(m[1])
	}
	return schedule.ParseClock(s)
}
