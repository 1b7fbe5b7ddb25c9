package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusUpcoming    AppointmentStatus = "upcoming"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
)

// allowedTransitions is the appointment lifecycle. Cancelled is terminal;
// rescheduled may be rescheduled again.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusUpcoming:    {AppointmentStatusConfirmed, AppointmentStatusRescheduled, AppointmentStatusCancelled},
	AppointmentStatusRescheduled: {AppointmentStatusConfirmed, AppointmentStatusRescheduled, AppointmentStatusCancelled},
	AppointmentStatusConfirmed:   {AppointmentStatusCancelled},
	AppointmentStatusCancelled:   {},
}

func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	switch AppointmentStatus(raw) {
	case AppointmentStatusUpcoming, AppointmentStatusConfirmed, AppointmentStatusRescheduled, AppointmentStatusCancelled:
		return AppointmentStatus(raw), true
	}
	return "", false
}

func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsCancelled() bool {
	return s == AppointmentStatusCancelled
}

// Appointment is a booking record. Active mirrors the status: it is false only
// for cancelled appointments and backs the unique (doctorId, date, slot) index,
// since the partial index needs an equality predicate.
type Appointment struct {
	ID          string            `json:"id" bson:"_id"`
	PatientID   string            `json:"patientId" bson:"patientId"`
	PatientName string            `json:"patientName,omitempty" bson:"patientName,omitempty"`
	DoctorID    string            `json:"doctorId" bson:"doctorId"`
	DoctorName  string            `json:"doctorName,omitempty" bson:"doctorName,omitempty"`
	Date        string            `json:"date" bson:"date"`
	Slot        string            `json:"slot" bson:"slot"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	Active      bool              `json:"-" bson:"active"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// Occupies reports whether the appointment blocks the given slot on the given
// doctor/date. Cancelled appointments never occupy anything.
func (a *Appointment) Occupies(doctorID, date string) bool {
	return !a.Status.IsCancelled() && a.DoctorID == doctorID && a.Date == date
}
