package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-09 is a Monday.
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestDecodeHours_StructuredArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"dia":"Lunes","activo":true,"inicio":"09:00","fin":"18:00"},
		{"dia":"Miércoles","activo":true,"inicio":"10:00","fin":"14:00"},
		{"dia":"Domingo","activo":false}
	]`)

	h := DecodeHours(raw)

	require.Equal(t, FormatStructured, h.Format)
	require.Len(t, h.Days, 3)
	assert.Equal(t, DayHours{Weekday: time.Monday, Active: true, Start: At(9, 0), End: At(18, 0)}, h.Days[0])
	assert.Equal(t, time.Wednesday, h.Days[1].Weekday)
	assert.False(t, h.Days[2].Active)
}

func TestDecodeHours_EscapedString(t *testing.T) {
	raw := json.RawMessage(`"[{\"dia\":\"Martes\",\"activo\":true,\"inicio\":\"08:30\",\"fin\":\"16:00\"}]"`)

	h := DecodeHours(raw)

	require.Equal(t, FormatStructured, h.Format)
	require.Len(t, h.Days, 1)
	assert.Equal(t, time.Tuesday, h.Days[0].Weekday)
	assert.Equal(t, At(8, 30), h.Days[0].Start)
}

func TestDecodeHours_DoubleEscaped(t *testing.T) {
	h := DecodeHoursString(`"[{\"dia\":\"Viernes\",\"activo\":true,\"inicio\":\"09:00\",\"fin\":\"13:00\"}]"`)

	require.Equal(t, FormatStructured, h.Format)
	require.Len(t, h.Days, 1)
	assert.Equal(t, time.Friday, h.Days[0].Weekday)
}

func TestDecodeHours_EnglishKeys(t *testing.T) {
	h := DecodeHoursString(`[{"Day":"saturday","Active":true,"Start":"10:00","End":"15:00"}]`)

	require.Len(t, h.Days, 1)
	assert.Equal(t, time.Saturday, h.Days[0].Weekday)
	assert.Equal(t, At(15, 0), h.Days[0].End)
}

func TestDecodeHours_TextAndEmpty(t *testing.T) {
	assert.Equal(t, Text("L-S 10:00-19:00"), DecodeHours(json.RawMessage(`"L-S 10:00-19:00"`)))
	assert.Equal(t, FormatNone, DecodeHours(nil).Format)
	assert.Equal(t, FormatNone, DecodeHours(json.RawMessage(`null`)).Format)
	assert.Equal(t, FormatInvalid, DecodeHoursString(`[{"dia": broken`).Format)
}

func TestDecodeHours_SkipsBadEntries(t *testing.T) {
	h := DecodeHoursString(`[
		{"dia":"Lunes","activo":true,"inicio":"18:00","fin":"09:00"},
		{"dia":"Feriado","activo":true,"inicio":"09:00","fin":"18:00"},
		{"dia":"Jueves","activo":true,"inicio":"09:00","fin":"18:00"}
	]`)

	require.Len(t, h.Days, 1)
	assert.Equal(t, time.Thursday, h.Days[0].Weekday)
}

func TestParseTextHours(t *testing.T) {
	cases := []struct {
		in    string
		days  int
		first time.Weekday
		start Clock
		end   Clock
	}{
		{"L-S 10:00-19:00", 6, time.Monday, At(10, 0), At(19, 0)},
		{"L-D 10:00-20:00", 7, time.Monday, At(10, 0), At(20, 0)},
		{"L-V 9:00 a 18:00", 5, time.Monday, At(9, 0), At(18, 0)},
		{"Lunes a Viernes 08:00-16:00", 5, time.Monday, At(8, 0), At(16, 0)},
		{"9 am - 6 pm", 7, time.Monday, At(9, 0), At(18, 0)},
		{"L-S 9:30am-7pm", 6, time.Monday, At(9, 30), At(19, 0)},
		{"10:00-14:00", 7, time.Monday, At(10, 0), At(14, 0)},
		{"S-L 10:00-15:00", 3, time.Monday, At(10, 0), At(15, 0)},
	}

	for _, c := range cases {
		days, err := ParseTextHours(c.in)
		require.NoError(t, err, c.in)
		assert.Len(t, days, c.days, c.in)
		assert.Equal(t, c.first, days[0].Weekday, c.in)
		assert.Equal(t, c.start, days[0].Start, c.in)
		assert.Equal(t, c.end, days[0].End, c.in)
	}
}

func TestParseTextHours_Segments(t *testing.T) {
	days, err := ParseTextHours("L-V 09:00-18:00, S 10:00-14:00")
	require.NoError(t, err)
	require.Len(t, days, 6)
	assert.Equal(t, time.Saturday, days[5].Weekday)
	assert.Equal(t, At(14, 0), days[5].End)
}

func TestParseTextHours_ClosedSegment(t *testing.T) {
	days, err := ParseTextHours("L-V 9:00-18:00, D cerrado")
	require.NoError(t, err)
	require.Len(t, days, 6)

	sun := days[5]
	assert.Equal(t, time.Sunday, sun.Weekday)
	assert.False(t, sun.Active)

	days, err = ParseTextHours("Lunes a Sabado 10:00 a 19:00; Domingo: Cerrado")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.False(t, days[6].Active)
	assert.True(t, days[5].Active)

	h := Text("L-V 9:00-18:00, D cerrado")
	_, open, err := h.For(time.Sunday)
	require.NoError(t, err)
	assert.True(t, open)
	assert.False(t, h.IsOpenAt(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
}

func TestParseTextHours_Invalid(t *testing.T) {
	for _, in := range []string{"", "Abierto siempre", "L-S 10:00 a 9:00", "Q-Z 10:00-12:00", "L-S 25:00-26:00", "Q cerrado"} {
		_, err := ParseTextHours(in)
		assert.Error(t, err, in)
	}
}

func TestHoursFor(t *testing.T) {
	h := Text("L-V 09:00-18:00")

	d, ok, err := h.For(time.Wednesday)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, At(9, 0), d.Start)

	_, ok, err = h.For(time.Sunday)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Hours{Format: FormatInvalid}.For(time.Monday)
	assert.ErrorIs(t, err, ErrUnparseableHours)

	_, _, err = Hours{}.For(time.Monday)
	assert.ErrorIs(t, err, ErrNoHours)
}

func TestIsOpenAt(t *testing.T) {
	h := Structured(DayHours{Weekday: time.Monday, Active: true, Start: At(9, 0), End: At(18, 0)})

	assert.True(t, h.IsOpenAt(monday.Add(9*time.Hour)))
	assert.True(t, h.IsOpenAt(monday.Add(18*time.Hour)))
	assert.False(t, h.IsOpenAt(monday.Add(8*time.Hour+59*time.Minute)))
	assert.False(t, h.IsOpenAt(monday.Add(24*time.Hour+10*time.Hour)))
}

func TestDaysSummary(t *testing.T) {
	assert.Equal(t, "Todos los días", Text("L-D 10:00-20:00").DaysSummary())
	assert.Equal(t, "Lunes a Viernes", Text("L-V 10:00-20:00").DaysSummary())
	assert.Equal(t, "Lunes a Sábado", Text("L-S 10:00-20:00").DaysSummary())
	assert.Equal(t, "Horario no disponible", Hours{}.DaysSummary())
	assert.Equal(t, "Cerrado temporalmente",
		Structured(DayHours{Weekday: time.Monday}).DaysSummary())
	assert.Equal(t, "Mié, Sáb",
		Structured(
			DayHours{Weekday: time.Saturday, Active: true, Start: At(9, 0), End: At(12, 0)},
			DayHours{Weekday: time.Wednesday, Active: true, Start: At(9, 0), End: At(12, 0)},
		).DaysSummary())
}

func TestTodayLabel(t *testing.T) {
	h := Text("L-V 09:00-18:00")

	assert.Equal(t, "09:00 - 18:00", h.TodayLabel(monday))
	assert.Equal(t, "Cerrado hoy", h.TodayLabel(monday.AddDate(0, 0, 6)))
	assert.Equal(t, "Horario no disponible", Hours{}.TodayLabel(monday))
}
