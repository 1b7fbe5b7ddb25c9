package appointments

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeAppointmentRepository mimics the mongo repository's conditional-write
// behavior: inserts and reschedules fail with a slot conflict when another
// active appointment holds the same (doctorId, date, slot) key.
type fakeAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	activeSlots  map[string]string
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{
		appointments: make(map[string]*models.Appointment),
		activeSlots:  make(map[string]string),
	}
}

func slotKey(doctorID, date, slot string) string {
	return fmt.Sprintf("%s|%s|%s", doctorID, date, slot)
}

func (r *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(appointment.DoctorID, appointment.Date, appointment.Slot)
	if appointment.Active {
		if _, taken := r.activeSlots[key]; taken {
			return exceptions.ErrSlotConflict(fmt.Errorf("duplicate key %s", key))
		}
		r.activeSlots[key] = appointment.ID
	}
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	found := *appointment
	return &found, nil
}

func (r *fakeAppointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.findWhere(func(a *models.Appointment) bool {
		return a.DoctorID == doctorID && a.Date == date
	})
}

func (r *fakeAppointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findWhere(func(a *models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *fakeAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findWhere(func(a *models.Appointment) bool { return a.PatientID == patientID })
}

func (r *fakeAppointmentRepository) findWhere(match func(*models.Appointment) bool) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Appointment, 0)
	for _, appointment := range r.appointments {
		if match(appointment) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.appointments[appointmentID]
	if !ok || appointment.Status != from {
		return nil, nil
	}
	appointment.Status = to
	if to.IsCancelled() {
		appointment.Active = false
		delete(r.activeSlots, slotKey(appointment.DoctorID, appointment.Date, appointment.Slot))
	}
	updated := *appointment
	return &updated, nil
}

func (r *fakeAppointmentRepository) Reschedule(ctx context.Context, appointmentID string, from models.AppointmentStatus, date, slot string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.appointments[appointmentID]
	if !ok || appointment.Status != from {
		return nil, nil
	}

	newKey := slotKey(appointment.DoctorID, date, slot)
	if holder, taken := r.activeSlots[newKey]; taken && holder != appointmentID {
		return nil, exceptions.ErrSlotConflict(fmt.Errorf("duplicate key %s", newKey))
	}
	delete(r.activeSlots, slotKey(appointment.DoctorID, appointment.Date, appointment.Slot))
	r.activeSlots[newKey] = appointmentID

	appointment.Date = date
	appointment.Slot = slot
	appointment.Status = models.AppointmentStatusRescheduled
	appointment.Active = true
	updated := *appointment
	return &updated, nil
}

// interleavingAppointmentRepository lets a test squeeze a competing write into
// the window between the usecase's read and its conditional update. The hook
// fires once, on the first FindByID after it is armed.
type interleavingAppointmentRepository struct {
	*fakeAppointmentRepository
	hookMu    sync.Mutex
	afterRead func()
}

func (r *interleavingAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := r.fakeAppointmentRepository.FindByID(ctx, appointmentID)

	r.hookMu.Lock()
	hook := r.afterRead
	r.afterRead = nil
	r.hookMu.Unlock()
	if hook != nil {
		hook()
	}
	return appointment, err
}

func (r *interleavingAppointmentRepository) armAfterRead(hook func()) {
	r.hookMu.Lock()
	r.afterRead = hook
	r.hookMu.Unlock()
}

// fakeLockerService hands out the lock to one holder at a time, like the redis
// SETNX implementation it stands in for.
type fakeLockerService struct {
	mu    sync.Mutex
	locks map[string]string
}

func newFakeLockerService() *fakeLockerService {
	return &fakeLockerService{locks: make(map[string]string)}
}

func (l *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.locks[key]; held {
		return false, "", nil
	}
	value := fmt.Sprintf("lock-%d", len(l.locks)+1)
	l.locks[key] = value
	return true, value, nil
}

func (l *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks[key] == lockValue {
		delete(l.locks, key)
	}
	return nil
}

func newTestAppointmentUsecase(repo contracts.AppointmentRepository, locker contracts.LockerService) contracts.AppointmentUsecase {
	internalConfig := &config.InternalConfig{
		App: config.App{DayLockTTLInSeconds: 5},
	}
	return NewAppointmentUsecase(repo, locker, internalConfig, zap.NewNop())
}

func bookRequest(patientID, doctorID, date, slot string) *requests.BookAppointment {
	return &requests.BookAppointment{
		PatientID:   patientID,
		PatientName: "Pat " + patientID,
		DoctorID:    doctorID,
		DoctorName:  "Dr " + doctorID,
		Date:        date,
		Slot:        slot,
	}
}

func TestAppointmentUsecaseBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Upcoming Appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		result, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, string(models.AppointmentStatusUpcoming), result.Status)
		assert.Equal(t, "09:00 AM", result.Slot)
	})

	t.Run("Rejects Slot Outside Catalogue", func(t *testing.T) {
		uc := newTestAppointmentUsecase(newFakeAppointmentRepository(), newFakeLockerService())

		_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "12:00 PM"))
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Rejects Malformed Date", func(t *testing.T) {
		uc := newTestAppointmentUsecase(newFakeAppointmentRepository(), newFakeLockerService())

		_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "10-01-2024", "09:00 AM"))
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Second Booking Of Same Slot Conflicts", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-10", "09:00 AM"))
		assert.True(t, exceptions.IsConflict(err))
	})

	t.Run("Same Slot Different Doctor Does Not Conflict", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		_, err = uc.Book(ctx, bookRequest("pat2", "doc2", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
	})

	t.Run("Cancelled Slot Can Be Rebooked", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
		assert.NoError(t, err)

		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
	})

	t.Run("Concurrent Bookings Yield Exactly One Winner", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		const attempts = 16
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Book(ctx, bookRequest(fmt.Sprintf("pat%d", i), "doc1", "2024-01-10", "10:00 AM"))
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.True(t, exceptions.IsConflict(err))
			}
		}
		assert.Equal(t, 1, winners)
	})
}

func TestAppointmentUsecaseFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppointmentRepository()
	uc := newTestAppointmentUsecase(repo, newFakeLockerService())

	_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
	assert.NoError(t, err)
	_, err = uc.Book(ctx, bookRequest("pat1", "doc2", "2024-01-11", "10:00 AM"))
	assert.NoError(t, err)
	_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-10", "11:00 AM"))
	assert.NoError(t, err)

	t.Run("Doctor Sees Own Appointments", func(t *testing.T) {
		result, err := uc.FindAll(ctx, &requests.ListAppointments{Role: constvars.RoleDoctor, UserID: "doc1"})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		for _, appointment := range result {
			assert.Equal(t, "doc1", appointment.DoctorID)
		}
	})

	t.Run("Patient Sees Own Appointments", func(t *testing.T) {
		result, err := uc.FindAll(ctx, &requests.ListAppointments{Role: constvars.RolePatient, UserID: "pat1"})
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Legacy PatientID Filter Works Without Role", func(t *testing.T) {
		result, err := uc.FindAll(ctx, &requests.ListAppointments{PatientID: "pat2"})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Empty Filter Returns Empty Not Everything", func(t *testing.T) {
		result, err := uc.FindAll(ctx, &requests.ListAppointments{})
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Role Without UserID Returns Empty", func(t *testing.T) {
		result, err := uc.FindAll(ctx, &requests.ListAppointments{Role: constvars.RoleDoctor})
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestAppointmentUsecaseAvailableSlots(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppointmentRepository()
	uc := newTestAppointmentUsecase(repo, newFakeLockerService())

	_, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
	assert.NoError(t, err)

	t.Run("Subtracts Booked Slots", func(t *testing.T) {
		available, err := uc.AvailableSlots(ctx, "doc1", "2024-01-10")
		assert.NoError(t, err)
		assert.NotContains(t, available, "09:00 AM")
		assert.Len(t, available, len(constvars.DaySlots)-1)
	})

	t.Run("Malformed Date Fails", func(t *testing.T) {
		_, err := uc.AvailableSlots(ctx, "doc1", "Jan 10 2024")
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})
}

func TestAppointmentUsecaseUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		uc := newTestAppointmentUsecase(newFakeAppointmentRepository(), newFakeLockerService())
		_, err := uc.UpdateStatus(ctx, "missing", &requests.UpdateAppointmentStatus{Status: "archived"})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Missing Appointment Is Not Found", func(t *testing.T) {
		uc := newTestAppointmentUsecase(newFakeAppointmentRepository(), newFakeLockerService())
		_, err := uc.UpdateStatus(ctx, "missing", &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})

	t.Run("Upcoming To Confirmed", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		updated, err := uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStatusConfirmed), updated.Status)
	})

	t.Run("Confirmed Cannot Be Rescheduled", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{
			Status:       "rescheduled",
			RescheduleTo: &requests.RescheduleTarget{Date: "2024-01-11", Slot: "10:00 AM"},
		})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))
	})

	t.Run("Cancelled Is Terminal", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
		assert.NoError(t, err)

		for _, target := range []string{"upcoming", "confirmed", "rescheduled", "cancelled"} {
			_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: target})
			assert.Truef(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity), "cancelled -> %s must be rejected", target)
		}
	})

	t.Run("Confirm Losing To A Concurrent Cancellation", func(t *testing.T) {
		repo := &interleavingAppointmentRepository{fakeAppointmentRepository: newFakeAppointmentRepository()}
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		// cancel between the confirm's read and its conditional write
		repo.armAfterRead(func() {
			_, err := uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
			assert.NoError(t, err)
		})

		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))

		stored, err := repo.FindByID(ctx, booked.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, stored.Status)
		assert.False(t, stored.Active, "the losing confirm must not resurrect the appointment")

		// the cancelled slot stays bookable
		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
	})
}

func TestAppointmentUsecaseReschedule(t *testing.T) {
	ctx := context.Background()

	rescheduleTo := func(date, slot string) *requests.UpdateAppointmentStatus {
		return &requests.UpdateAppointmentStatus{
			Status:       "rescheduled",
			RescheduleTo: &requests.RescheduleTarget{Date: date, Slot: slot},
		}
	}

	t.Run("Moves Appointment And Frees Old Slot", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		updated, err := uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "10:00 AM"))
		assert.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStatusRescheduled), updated.Status)
		assert.Equal(t, "2024-01-11", updated.Date)
		assert.Equal(t, "10:00 AM", updated.Slot)

		// the vacated slot is bookable again
		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
	})

	t.Run("Same Day Same Slot Is Allowed", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		updated, err := uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStatusRescheduled), updated.Status)
	})

	t.Run("Occupied Target Slot Conflicts", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)
		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-11", "10:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "10:00 AM"))
		assert.True(t, exceptions.IsConflict(err))
	})

	t.Run("Missing Target Rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "rescheduled"})
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Target Slot Outside Catalogue Rejected", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "08:00 AM"))
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})

	t.Run("Held Day Lock Is Retryable Not A Conflict", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		locker := newFakeLockerService()
		uc := newTestAppointmentUsecase(repo, locker)

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		lockKey := fmt.Sprintf(constvars.RedisKeyDoctorDayLockFmt, "doc1", "2024-01-11")
		locked, _, err := locker.TryLock(ctx, lockKey, time.Minute)
		assert.NoError(t, err)
		assert.True(t, locked)

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "10:00 AM"))
		assert.True(t, exceptions.IsStatus(err, constvars.StatusServiceUnavailable))
		assert.False(t, exceptions.IsConflict(err), "lock contention must not look like an occupied slot")
	})

	t.Run("Reschedule Losing To A Concurrent Cancellation", func(t *testing.T) {
		repo := &interleavingAppointmentRepository{fakeAppointmentRepository: newFakeAppointmentRepository()}
		uc := newTestAppointmentUsecase(repo, newFakeLockerService())

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		repo.armAfterRead(func() {
			_, err := uc.UpdateStatus(ctx, booked.ID, &requests.UpdateAppointmentStatus{Status: "cancelled"})
			assert.NoError(t, err)
		})

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "10:00 AM"))
		assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))

		stored, err := repo.FindByID(ctx, booked.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, stored.Status)
		assert.Equal(t, "2024-01-10", stored.Date, "the losing reschedule must not move the appointment")

		// the target slot was never claimed
		_, err = uc.Book(ctx, bookRequest("pat2", "doc1", "2024-01-11", "10:00 AM"))
		assert.NoError(t, err)
	})

	t.Run("Lock Is Released After Reschedule", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		locker := newFakeLockerService()
		uc := newTestAppointmentUsecase(repo, locker)

		booked, err := uc.Book(ctx, bookRequest("pat1", "doc1", "2024-01-10", "09:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "10:00 AM"))
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(ctx, booked.ID, rescheduleTo("2024-01-11", "11:00 AM"))
		assert.NoError(t, err, "the day lock must not outlive the first reschedule")
	})
}
