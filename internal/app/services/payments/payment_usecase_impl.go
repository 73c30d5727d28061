package payments

import (
	"context"
	"fmt"
	"math"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PaymentGateway        contracts.PaymentGatewayService
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			PaymentGateway:        paymentGatewayService,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePaymentOrder(ctx context.Context, userID string, request *requests.CreatePaymentOrder) (*responses.GatewayOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.Cancelled {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.UserID != userID {
		return nil, exceptions.ErrUnauthorizedAction(nil)
	}

	// Gateway amounts are in the currency's smallest unit. The receipt
	// ties the order back to the appointment for verification.
	amount := int64(math.Round(appointment.Amount * 100))
	order, err := uc.PaymentGateway.CreateOrder(ctx, amount, uc.InternalConfig.PaymentGateway.Currency, appointment.ID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreatePaymentOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return order, nil
}

func (uc *paymentUsecase) VerifyPayment(ctx context.Context, userID string, request *requests.VerifyPayment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.VerifyPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)

	// The signature proves the checkout result came from the gateway.
	// Nothing is read or mutated before this check passes.
	if !uc.PaymentGateway.VerifySignature(request.OrderID, request.PaymentID, request.Signature) {
		return exceptions.ErrPaymentSignatureInvalid(nil)
	}

	order, err := uc.PaymentGateway.FetchOrder(ctx, request.OrderID)
	if err != nil {
		return err
	}
	if order.Status != constvars.PaymentGatewayOrderStatusPaid {
		return exceptions.ErrPaymentNotCompleted(fmt.Errorf("order %s status is %s", order.ID, order.Status))
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, order.Receipt)
	if err != nil {
		return err
	}
	if appointment == nil || appointment.Cancelled {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.UserID != userID {
		return exceptions.ErrUnauthorizedAction(nil)
	}

	if err := uc.AppointmentRepository.MarkAppointmentPaid(ctx, appointment.ID); err != nil {
		return err
	}

	if notifyErr := uc.NotificationService.PublishAppointmentEvent(ctx, constvars.NotificationEventAppointmentPaid, appointment); notifyErr != nil {
		uc.Log.Error("paymentUsecase.VerifyPayment error publishing paid event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(notifyErr),
		)
	}

	uc.Log.Info("paymentUsecase.VerifyPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}
