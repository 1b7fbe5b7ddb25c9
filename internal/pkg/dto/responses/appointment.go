package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName,omitempty"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName,omitempty"`
	Date        string    `json:"date"`
	Slot        string    `json:"slot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
