package appointments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	UserRepository        contracts.UserRepository
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	LockerService         contracts.LockerService
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	userMongoRepository contracts.UserRepository,
	doctorMongoRepository contracts.DoctorRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	lockerService contracts.LockerService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			UserRepository:        userMongoRepository,
			DoctorRepository:      doctorMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			LockerService:         lockerService,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, userID string, request *requests.BookAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)

	// Get the booking user
	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	// Serialize check-and-reserve per doctor
	lockKey := fmt.Sprintf(constvars.RedisKeyDoctorSlotLock, request.DoctorID)
	lockTTL := time.Duration(uc.InternalConfig.Locker.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment error releasing doctor lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	// Get the doctor and check availability
	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	if !doctor.Available {
		return nil, exceptions.ErrDoctorNotAvailable(nil)
	}

	// Reserve the slot. The conditional update fails for a taken slot even
	// if another instance slipped past the lock.
	err = uc.DoctorRepository.ReserveSlot(ctx, request.DoctorID, request.SlotDate, request.SlotTime)
	if err != nil {
		return nil, err
	}

	// Build the appointment with denormalized snapshots
	appointment := &models.Appointment{
		UserID:     userID,
		DoctorID:   request.DoctorID,
		UserData:   user.Snapshot(),
		DoctorData: doctor.Snapshot(),
		Amount:     doctor.Fee,
		SlotDate:   request.SlotDate,
		SlotTime:   request.SlotTime,
	}

	created, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		// Give the slot back so the failed insert does not strand it
		if releaseErr := uc.DoctorRepository.ReleaseSlot(ctx, request.DoctorID, request.SlotDate, request.SlotTime); releaseErr != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment error releasing slot after failed insert",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}

	if notifyErr := uc.NotificationService.PublishAppointmentEvent(ctx, constvars.NotificationEventAppointmentBooked, created); notifyErr != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error publishing booked event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, created.ID),
			zap.Error(notifyErr),
		)
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return created, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return uc.AppointmentRepository.FindAppointmentsByUserID(ctx, userID)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, userID string, request *requests.CancelAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil || appointment.Cancelled {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.UserID != userID {
		return exceptions.ErrUnauthorizedAction(nil)
	}
	if appointment.Payment {
		return exceptions.ErrPaidAppointmentCancellation(nil)
	}

	if err := uc.AppointmentRepository.MarkAppointmentCancelled(ctx, request.AppointmentID); err != nil {
		return err
	}

	if err := uc.DoctorRepository.ReleaseSlot(ctx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime); err != nil {
		return err
	}

	if notifyErr := uc.NotificationService.PublishAppointmentEvent(ctx, constvars.NotificationEventAppointmentCancelled, appointment); notifyErr != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error publishing cancelled event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(notifyErr),
		)
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}
