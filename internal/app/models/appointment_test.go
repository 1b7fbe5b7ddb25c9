package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	t.Run("Known Statuses", func(t *testing.T) {
		for _, raw := range []string{"upcoming", "confirmed", "rescheduled", "cancelled"} {
			status, ok := ParseAppointmentStatus(raw)
			assert.True(t, ok, "status %q should parse", raw)
			assert.Equal(t, raw, string(status))
		}
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, ok := ParseAppointmentStatus("completed")
		assert.False(t, ok, "arbitrary status strings should be rejected")
	})

	t.Run("Empty Status", func(t *testing.T) {
		_, ok := ParseAppointmentStatus("")
		assert.False(t, ok)
	})
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusUpcoming, AppointmentStatusConfirmed, true},
		{AppointmentStatusUpcoming, AppointmentStatusRescheduled, true},
		{AppointmentStatusUpcoming, AppointmentStatusCancelled, true},
		{AppointmentStatusUpcoming, AppointmentStatusUpcoming, false},
		{AppointmentStatusRescheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusRescheduled, AppointmentStatusRescheduled, true},
		{AppointmentStatusRescheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusRescheduled, AppointmentStatusUpcoming, false},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusRescheduled, false},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusUpcoming, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusRescheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestOccupies(t *testing.T) {
	appointment := &Appointment{
		DoctorID: "doc_1",
		Date:     "2024-01-10",
		Slot:     "09:00 AM",
		Status:   AppointmentStatusUpcoming,
	}

	assert.True(t, appointment.Occupies("doc_1", "2024-01-10"))
	assert.False(t, appointment.Occupies("doc_2", "2024-01-10"), "other doctor is unaffected")
	assert.False(t, appointment.Occupies("doc_1", "2024-01-11"), "other date is unaffected")

	appointment.Status = AppointmentStatusCancelled
	assert.False(t, appointment.Occupies("doc_1", "2024-01-10"), "cancelled bookings free their slot")
}
