package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// AppointmentRepository is the persistence collaborator for appointments. All
// writes are conditional, atomically with the write itself: Insert and
// Reschedule fail with a slot-conflict error when another active appointment
// already occupies the (doctorId, date, slot) key, and UpdateStatus and
// Reschedule only apply when the stored status still equals from — a nil
// result with a nil error means the condition no longer held.
type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) (*models.Appointment, error)
	Reschedule(ctx context.Context, appointmentID string, from models.AppointmentStatus, date, slot string) (*models.Appointment, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, filter *requests.ListAppointments) ([]responses.Appointment, error)
	AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}
