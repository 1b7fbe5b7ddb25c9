package appointments

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"
)

// AvailableSlots computes the open slots for a doctor on a date: the day slot
// catalogue minus every slot held by a non-cancelled appointment for that
// doctor and date, in catalogue order. It never mutates its input and returns
// an empty (non-nil) slice when the day is fully booked. An unknown doctor
// simply has no bookings, so the full catalogue comes back.
func AvailableSlots(doctorID, date string, existing []models.Appointment) ([]string, error) {
	if _, err := time.Parse(constvars.DateLayout, date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	booked := make(map[string]struct{}, len(existing))
	for i := range existing {
		if existing[i].Occupies(doctorID, date) {
			booked[existing[i].Slot] = struct{}{}
		}
	}

	available := make([]string, 0, len(constvars.DaySlots))
	for _, slot := range constvars.DaySlots {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}
	return available, nil
}

// AvailableSlotsExcluding is AvailableSlots with one appointment treated as
// absent, used when re-validating a reschedule so the appointment being moved
// does not block its own target.
func AvailableSlotsExcluding(doctorID, date, excludeAppointmentID string, existing []models.Appointment) ([]string, error) {
	filtered := make([]models.Appointment, 0, len(existing))
	for i := range existing {
		if existing[i].ID == excludeAppointmentID {
			continue
		}
		filtered = append(filtered, existing[i])
	}
	return AvailableSlots(doctorID, date, filtered)
}

// SlotInCatalogue reports whether slot is one of the bookable day slots.
func SlotInCatalogue(slot string) bool {
	for _, known := range constvars.DaySlots {
		if known == slot {
			return true
		}
	}
	return false
}
