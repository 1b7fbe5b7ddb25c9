package requests

type BookAppointment struct {
	PatientID   string `json:"patientId" validate:"required"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId" validate:"required"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date" validate:"required,iso_date"`
	Slot        string `json:"slot" validate:"required,day_slot"`
}

// ListAppointments mirrors the identity collaborator's claims or, for legacy
// callers, a bare patientId. An empty filter yields an empty result, never the
// full table.
type ListAppointments struct {
	Role      string `json:"role" validate:"omitempty,role"`
	UserID    string `json:"userId"`
	PatientID string `json:"patientId"`
}

type RescheduleTarget struct {
	Date string `json:"date" validate:"required,iso_date"`
	Slot string `json:"slot" validate:"required,day_slot"`
}

type UpdateAppointmentStatus struct {
	Status       string            `json:"status" validate:"required"`
	RescheduleTo *RescheduleTarget `json:"rescheduleTo,omitempty" validate:"omitempty"`
}
