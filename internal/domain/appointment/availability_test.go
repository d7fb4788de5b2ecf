package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/nearbiz/internal/domain/schedule"
)

const tech = int64(7)

var before = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func booking(start, end string, status Status) Booking {
	c := clocks(start, end)
	return Booking{TechnicianID: tech, Date: monday, Start: c[0], End: c[1], Status: status}
}

func query(start string, minutes int) SlotQuery {
	return SlotQuery{
		Date:         monday,
		Start:        clocks(start)[0],
		Duration:     time.Duration(minutes) * time.Minute,
		TechnicianID: tech,
	}
}

func TestIsSlotAvailable_Overlap(t *testing.T) {
	bookings := []Booking{booking("10:00", "10:30", StatusConfirmed)}

	assert.False(t, IsSlotAvailable(query("10:15", 15), bookings, before))
	assert.False(t, IsSlotAvailable(query("10:00", 15), bookings, before))
	assert.False(t, IsSlotAvailable(query("09:45", 30), bookings, before))
	assert.True(t, IsSlotAvailable(query("09:45", 15), bookings, before))
	assert.True(t, IsSlotAvailable(query("10:30", 15), bookings, before))
}

func TestIsSlotAvailable_NonBlockingBookings(t *testing.T) {
	other := booking("10:00", "10:30", StatusPending)
	other.TechnicianID = 99
	nextDay := booking("10:00", "10:30", StatusPending)
	nextDay.Date = monday.AddDate(0, 0, 1)

	bookings := []Booking{
		booking("10:00", "10:30", StatusCancelled),
		booking("10:00", "10:30", StatusRejected),
		other,
		nextDay,
	}

	assert.True(t, IsSlotAvailable(query("10:00", 30), bookings, before))
}

func TestIsSlotAvailable_Past(t *testing.T) {
	now := time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC)

	assert.False(t, IsSlotAvailable(query("10:45", 15), nil, now))
	assert.False(t, IsSlotAvailable(query("11:00", 15), nil, now))
	assert.True(t, IsSlotAvailable(query("11:15", 15), nil, now))
}

func TestHasOverlap(t *testing.T) {
	existing := []Interval{{Start: schedule.At(10, 0), End: schedule.At(10, 30)}}

	assert.True(t, HasOverlap(Interval{Start: schedule.At(10, 29), End: schedule.At(11, 0)}, existing))
	assert.True(t, HasOverlap(Interval{Start: schedule.At(9, 0), End: schedule.At(12, 0)}, existing))
	assert.False(t, HasOverlap(Interval{Start: schedule.At(9, 30), End: schedule.At(10, 0)}, existing))
	assert.False(t, HasOverlap(Interval{Start: schedule.At(10, 0), End: schedule.At(10, 30)}, nil))
}

func TestAvailability(t *testing.T) {
	plan := SlotPlan{
		Source: SourceResolved,
		Window: Interval{Start: schedule.At(9, 0), End: schedule.At(11, 0)},
		Slots:  clocks("09:30", "09:45", "10:00", "10:15", "10:30", "10:45"),
	}
	bookings := []Booking{booking("10:00", "10:30", StatusPending)}
	now := time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)

	slots := Availability(plan, query("00:00", 30), bookings, now, Label12)

	assert.Equal(t, []TimeSlot{
		{Label: "9:30 am", Time: "09:30", Available: false},
		{Label: "9:45 am", Time: "09:45", Available: false},
		{Label: "10:00 am", Time: "10:00", Available: false},
		{Label: "10:15 am", Time: "10:15", Available: false},
		{Label: "10:30 am", Time: "10:30", Available: true},
		{Label: "10:45 am", Time: "10:45", Available: false},
	}, slots)
}

func TestAvailability_MatchesIsSlotAvailable(t *testing.T) {
	plan := GenerateSlots(schedule.Text("9:00-13:00"), monday, SlotOptions{})
	bookings := []Booking{
		booking("10:00", "10:45", StatusConfirmed),
		booking("11:30", "12:00", StatusCancelled),
	}
	tmpl := query("00:00", 45)

	slots := Availability(plan, tmpl, bookings, before, Label24)

	for i, s := range slots {
		q := tmpl
		q.Start = plan.Slots[i]
		assert.Equal(t, IsSlotAvailable(q, bookings, before) && IsWithinWorkingHours(plan, q), s.Available, s.Time)
		assert.Equal(t, s.Time, s.Label)
	}
	assert.False(t, slots[len(slots)-1].Available, "12:45 runs past closing")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusCancelled, ParseStatus("Cancelada"))
	assert.Equal(t, StatusPending, ParseStatus(" pendiente "))
	assert.Equal(t, StatusConfirmed, ParseStatus("CONFIRMED"))
	assert.Equal(t, StatusRejected, ParseStatus("rechazada"))
	assert.True(t, ParseStatus("en_proceso").Blocks())
	assert.False(t, StatusRejected.Blocks())
	assert.Equal(t, "pendiente", InitialStatus().Upstream())
}
