package appointments

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateProfile(ctx context.Context, userID string, profile *models.ProfileUpdate) (*models.User, error) {
	return f.users[userID], nil
}

type fakeDoctorRepository struct {
	mu      sync.Mutex
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepository) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doctor, ok := f.doctors[doctorID]
	if !ok {
		return exceptions.ErrSlotUnavailable(nil)
	}
	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = make(map[string][]string)
	}
	for _, booked := range doctor.SlotsBooked[slotDate] {
		if booked == slotTime {
			return exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s %s already booked", slotDate, slotTime))
		}
	}
	doctor.SlotsBooked[slotDate] = append(doctor.SlotsBooked[slotDate], slotTime)
	return nil
}

func (f *fakeDoctorRepository) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil
	}
	slots := doctor.SlotsBooked[slotDate]
	for i, booked := range slots {
		if booked == slotTime {
			doctor.SlotsBooked[slotDate] = append(slots[:i], slots[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	nextID       int
	failInsert   bool
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failInsert {
		return nil, exceptions.ErrMongoDBInsertDocument(errors.New("insert failed"))
	}
	f.nextID++
	appointment.ID = fmt.Sprintf("appointment-%d", f.nextID)
	appointment.CreatedAt = time.Now()
	f.appointments[appointment.ID] = appointment
	return appointment, nil
}

func (f *fakeAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepository) FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.UserID == userID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) MarkAppointmentCancelled(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Cancelled = true
	}
	return nil
}

func (f *fakeAppointmentRepository) MarkAppointmentPaid(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Payment = true
	}
	return nil
}

type fakeLockerService struct {
	mu       sync.Mutex
	held     map[string]string
	tryLocks int
	unlocks  int
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.held == nil {
		f.held = make(map[string]string)
	}
	f.tryLocks++
	if _, taken := f.held[key]; taken {
		return false, "", nil
	}
	f.held[key] = "lock-value"
	return true, "lock-value", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.unlocks++
	delete(f.held, key)
	return nil
}

type fakeNotificationService struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotificationService) PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, eventType)
	return nil
}

type usecaseFixture struct {
	users        *fakeUserRepository
	doctors      *fakeDoctorRepository
	appointments *fakeAppointmentRepository
	locker       *fakeLockerService
	notifier     *fakeNotificationService
	usecase      *appointmentUsecase
}

func newFixture() *usecaseFixture {
	users := &fakeUserRepository{users: map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Jane Doe", Email: "jane@example.com", Password: "hash"},
		"user-2": {ID: "user-2", Name: "John Roe", Email: "john@example.com", Password: "hash"},
	}}
	doctors := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doctor-1": {ID: "doctor-1", Name: "Dr. Smith", Fee: 500, Available: true},
		"doctor-2": {ID: "doctor-2", Name: "Dr. Off", Fee: 300, Available: false},
	}}
	appointments := &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
	locker := &fakeLockerService{}
	notifier := &fakeNotificationService{}

	usecase := &appointmentUsecase{
		UserRepository:        users,
		DoctorRepository:      doctors,
		AppointmentRepository: appointments,
		LockerService:         locker,
		NotificationService:   notifier,
		InternalConfig: &config.InternalConfig{
			Locker: config.Locker{SlotLockTTLInSeconds: 5},
		},
		Log: zap.NewNop(),
	}

	return &usecaseFixture{
		users:        users,
		doctors:      doctors,
		appointments: appointments,
		locker:       locker,
		notifier:     notifier,
		usecase:      usecase,
	}
}

func bookRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		DoctorID: "doctor-1",
		SlotDate: "12_06_2026",
		SlotTime: "10:00 AM",
	}
}

func TestBookAppointment(t *testing.T) {
	t.Run("Successful Booking", func(t *testing.T) {
		fx := newFixture()

		appointment, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, "user-1", appointment.UserID)
		assert.Equal(t, float64(500), appointment.Amount, "amount must come from the doctor fee")
		assert.Empty(t, appointment.UserData.Password, "user snapshot must not carry the password hash")
		assert.Nil(t, appointment.DoctorData.SlotsBooked, "doctor snapshot must not carry the slot map")
		assert.Equal(t, []string{"10:00 AM"}, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"])
		assert.Equal(t, []string{constvars.NotificationEventAppointmentBooked}, fx.notifier.events)
		assert.Equal(t, fx.locker.tryLocks, fx.locker.unlocks, "the doctor lock must always be released")
	})

	t.Run("Second Booking Of Same Slot Conflicts", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		_, err = fx.usecase.BookAppointment(context.Background(), "user-2", bookRequest())
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotUnavailable, customErr.ClientMessage)
		assert.Len(t, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"], 1)
	})

	t.Run("Concurrent Bookings Yield Exactly One Winner", func(t *testing.T) {
		fx := newFixture()

		const attempts = 20
		var wg sync.WaitGroup
		results := make(chan error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded, "exactly one concurrent booking may win")
		assert.Len(t, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"], 1)
		assert.Len(t, fx.appointments.appointments, 1)
	})

	t.Run("Unavailable Doctor Rejected", func(t *testing.T) {
		fx := newFixture()
		request := bookRequest()
		request.DoctorID = "doctor-2"

		_, err := fx.usecase.BookAppointment(context.Background(), "user-1", request)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientDoctorNotAvailable, customErr.ClientMessage)
	})

	t.Run("Unknown Doctor Rejected", func(t *testing.T) {
		fx := newFixture()
		request := bookRequest()
		request.DoctorID = "doctor-404"

		_, err := fx.usecase.BookAppointment(context.Background(), "user-1", request)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientDoctorNotExist, customErr.ClientMessage)
	})

	t.Run("Failed Insert Releases The Slot", func(t *testing.T) {
		fx := newFixture()
		fx.appointments.failInsert = true

		_, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.Error(t, err)
		assert.Empty(t, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"], "slot must be given back after a failed insert")
		assert.Empty(t, fx.notifier.events)
	})
}

func TestListAppointments(t *testing.T) {
	t.Run("Only Own Appointments Returned", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		other := bookRequest()
		other.SlotTime = "11:00 AM"
		_, err = fx.usecase.BookAppointment(context.Background(), "user-2", other)
		assert.NoError(t, err)

		mine, err := fx.usecase.ListAppointments(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, "user-1", mine[0].UserID)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("Owner Cancels Successfully", func(t *testing.T) {
		fx := newFixture()

		appointment, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		err = fx.usecase.CancelAppointment(context.Background(), "user-1", &requests.CancelAppointment{AppointmentID: appointment.ID})
		assert.NoError(t, err)
		assert.True(t, fx.appointments.appointments[appointment.ID].Cancelled)
		assert.Empty(t, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"], "cancellation must release the slot")
		assert.Contains(t, fx.notifier.events, constvars.NotificationEventAppointmentCancelled)
	})

	t.Run("Cancellation Releases Only Its Own Slot", func(t *testing.T) {
		fx := newFixture()

		first, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		second := bookRequest()
		second.SlotTime = "11:00 AM"
		_, err = fx.usecase.BookAppointment(context.Background(), "user-2", second)
		assert.NoError(t, err)

		err = fx.usecase.CancelAppointment(context.Background(), "user-1", &requests.CancelAppointment{AppointmentID: first.ID})
		assert.NoError(t, err)
		assert.Equal(t, []string{"11:00 AM"}, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"])
	})

	t.Run("Foreign User Cannot Cancel", func(t *testing.T) {
		fx := newFixture()

		appointment, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		err = fx.usecase.CancelAppointment(context.Background(), "user-2", &requests.CancelAppointment{AppointmentID: appointment.ID})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientUnauthorizedAction, customErr.ClientMessage)
		assert.False(t, fx.appointments.appointments[appointment.ID].Cancelled)
		assert.Len(t, fx.doctors.doctors["doctor-1"].SlotsBooked["12_06_2026"], 1, "slot must stay reserved")
	})

	t.Run("Paid Appointment Cannot Be Cancelled", func(t *testing.T) {
		fx := newFixture()

		appointment, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)
		assert.NoError(t, fx.appointments.MarkAppointmentPaid(context.Background(), appointment.ID))

		err = fx.usecase.CancelAppointment(context.Background(), "user-1", &requests.CancelAppointment{AppointmentID: appointment.ID})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientPaidAppointment, customErr.ClientMessage)
		assert.False(t, fx.appointments.appointments[appointment.ID].Cancelled)
	})

	t.Run("Already Cancelled Appointment Not Found", func(t *testing.T) {
		fx := newFixture()

		appointment, err := fx.usecase.BookAppointment(context.Background(), "user-1", bookRequest())
		assert.NoError(t, err)

		err = fx.usecase.CancelAppointment(context.Background(), "user-1", &requests.CancelAppointment{AppointmentID: appointment.ID})
		assert.NoError(t, err)

		err = fx.usecase.CancelAppointment(context.Background(), "user-1", &requests.CancelAppointment{AppointmentID: appointment.ID})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAppointmentNotExist, customErr.ClientMessage)
	})
}
