package appointments

import (
	"context"
	"fmt"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	LockerService         contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		LockerService:         lockerService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// Book creates an upcoming appointment. Conflict detection is delegated to the
// repository's conditional insert, so two concurrent requests for the same
// (doctor, date, slot) cannot both succeed.
func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	if _, err := time.Parse(constvars.DateLayout, request.Date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !SlotInCatalogue(request.Slot) {
		return nil, exceptions.ErrSlotNotInCatalogue(fmt.Errorf("slot %q", request.Slot))
	}

	appointment := &models.Appointment{
		ID:          utils.GenerateAppointmentID(),
		PatientID:   request.PatientID,
		PatientName: request.PatientName,
		DoctorID:    request.DoctorID,
		DoctorName:  request.DoctorName,
		Date:        request.Date,
		Slot:        request.Slot,
		Status:      models.AppointmentStatusUpcoming,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.AppointmentRepository.Insert(ctx, appointment); err != nil {
		return nil, err
	}
	return buildAppointmentResponse(appointment), nil
}

// FindAll resolves the caller's view of appointments. An unresolvable filter
// returns an empty list, never the whole collection.
func (uc *appointmentUsecase) FindAll(ctx context.Context, filter *requests.ListAppointments) ([]responses.Appointment, error) {
	var (
		appointments []models.Appointment
		err          error
	)

	switch {
	case filter.Role == constvars.RoleDoctor && filter.UserID != "":
		appointments, err = uc.AppointmentRepository.FindByDoctor(ctx, filter.UserID)
	case filter.Role == constvars.RolePatient && filter.UserID != "":
		appointments, err = uc.AppointmentRepository.FindByPatient(ctx, filter.UserID)
	case filter.Role == "" && filter.PatientID != "":
		appointments, err = uc.AppointmentRepository.FindByPatient(ctx, filter.PatientID)
	default:
		return []responses.Appointment{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *buildAppointmentResponse(&appointments[i]))
	}
	return result, nil
}

func (uc *appointmentUsecase) AvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if _, err := time.Parse(constvars.DateLayout, date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	existing, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(doctorID, date, existing)
}

// UpdateStatus drives the appointment lifecycle. A move to rescheduled also
// carries the appointment to a new date/slot, guarded by a per-doctor-day lock
// so the availability check and the conditional write see the same day.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	targetStatus, ok := models.ParseAppointmentStatus(request.Status)
	if !ok {
		return nil, exceptions.ErrUnknownStatus(request.Status)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !appointment.Status.CanTransitionTo(targetStatus) {
		return nil, exceptions.ErrInvalidStatusTransition(string(appointment.Status), string(targetStatus))
	}

	if targetStatus == models.AppointmentStatusRescheduled {
		return uc.reschedule(ctx, appointment, request.RescheduleTo)
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, appointment.Status, targetStatus)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, uc.lostTransitionRace(ctx, appointmentID, targetStatus)
	}
	return buildAppointmentResponse(updated), nil
}

// lostTransitionRace resolves a conditional transition write that matched
// nothing: the status changed between the read and the write, so the
// transition is re-judged against the current status.
func (uc *appointmentUsecase) lostTransitionRace(ctx context.Context, appointmentID string, target models.AppointmentStatus) error {
	current, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if current == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return exceptions.ErrInvalidStatusTransition(string(current.Status), string(target))
}

func (uc *appointmentUsecase) reschedule(ctx context.Context, appointment *models.Appointment, target *requests.RescheduleTarget) (*responses.Appointment, error) {
	if target == nil {
		return nil, exceptions.ErrRescheduleTargetMissing()
	}
	if err := utils.ValidateStruct(target); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyDoctorDayLockFmt, appointment.DoctorID, target.Date)
	lockTTL := time.Duration(uc.InternalConfig.App.DayLockTTLInSeconds) * time.Second
	locked, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, exceptions.ErrDoctorDayLocked(fmt.Errorf("doctor day %s/%s", appointment.DoctorID, target.Date))
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("failed to release doctor day lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	existing, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, appointment.DoctorID, target.Date)
	if err != nil {
		return nil, err
	}
	available, err := AvailableSlotsExcluding(appointment.DoctorID, target.Date, appointment.ID, existing)
	if err != nil {
		return nil, err
	}
	if !containsSlot(available, target.Slot) {
		return nil, exceptions.ErrSlotConflict(fmt.Errorf("slot %s on %s is taken", target.Slot, target.Date))
	}

	updated, err := uc.AppointmentRepository.Reschedule(ctx, appointment.ID, appointment.Status, target.Date, target.Slot)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, uc.lostTransitionRace(ctx, appointment.ID, models.AppointmentStatusRescheduled)
	}
	return buildAppointmentResponse(updated), nil
}

func containsSlot(slots []string, slot string) bool {
	for _, candidate := range slots {
		if candidate == slot {
			return true
		}
	}
	return false
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date,
		Slot:        appointment.Slot,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}
