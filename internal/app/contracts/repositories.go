package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, profile *models.ProfileUpdate) (*models.User, error)
}

type DoctorRepository interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)

	// ReserveSlot appends slotTime to the doctor's booked slots for slotDate
	// only when it is not already present. The caller learns about a lost
	// race through the returned error.
	ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) error
	ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	MarkAppointmentCancelled(ctx context.Context, appointmentID string) error
	MarkAppointmentPaid(ctx context.Context, appointmentID string) error
}

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}
