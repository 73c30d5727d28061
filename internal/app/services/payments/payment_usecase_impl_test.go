package payments

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testKeySecret = "gateway-test-secret"

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	f.appointments[appointment.ID] = appointment
	return appointment, nil
}

func (f *fakeAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepository) FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) MarkAppointmentCancelled(ctx context.Context, appointmentID string) error {
	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Cancelled = true
	}
	return nil
}

func (f *fakeAppointmentRepository) MarkAppointmentPaid(ctx context.Context, appointmentID string) error {
	if appointment, ok := f.appointments[appointmentID]; ok {
		appointment.Payment = true
	}
	return nil
}

type fakeGatewayService struct {
	orders        map[string]*responses.GatewayOrder
	createdOrders []*responses.GatewayOrder
}

func (f *fakeGatewayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error) {
	order := &responses.GatewayOrder{
		ID:       "order_" + receipt,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}
	f.orders[order.ID] = order
	f.createdOrders = append(f.createdOrders, order)
	return order, nil
}

func (f *fakeGatewayService) FetchOrder(ctx context.Context, orderID string) (*responses.GatewayOrder, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, exceptions.ErrGatewayFetchOrder(nil)
	}
	return order, nil
}

func (f *fakeGatewayService) VerifySignature(orderID, paymentID, signature string) bool {
	return utils.VerifyGatewaySignature(orderID, paymentID, signature, testKeySecret)
}

type fakeNotificationService struct {
	events []string
}

func (f *fakeNotificationService) PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error {
	f.events = append(f.events, eventType)
	return nil
}

type paymentFixture struct {
	appointments *fakeAppointmentRepository
	gateway      *fakeGatewayService
	notifier     *fakeNotificationService
	usecase      *paymentUsecase
}

func newFixture() *paymentFixture {
	appointments := &fakeAppointmentRepository{appointments: map[string]*models.Appointment{
		"appointment-1": {
			ID:       "appointment-1",
			UserID:   "user-1",
			DoctorID: "doctor-1",
			Amount:   500,
			SlotDate: "12_06_2026",
			SlotTime: "10:00 AM",
		},
	}}
	gateway := &fakeGatewayService{orders: make(map[string]*responses.GatewayOrder)}
	notifier := &fakeNotificationService{}

	usecase := &paymentUsecase{
		AppointmentRepository: appointments,
		PaymentGateway:        gateway,
		NotificationService:   notifier,
		InternalConfig: &config.InternalConfig{
			PaymentGateway: config.PaymentGateway{Currency: "INR", KeySecret: testKeySecret},
		},
		Log: zap.NewNop(),
	}

	return &paymentFixture{
		appointments: appointments,
		gateway:      gateway,
		notifier:     notifier,
		usecase:      usecase,
	}
}

func TestCreatePaymentOrder(t *testing.T) {
	t.Run("Order Carries Smallest Unit Amount And Receipt", func(t *testing.T) {
		fx := newFixture()

		order, err := fx.usecase.CreatePaymentOrder(context.Background(), "user-1", &requests.CreatePaymentOrder{AppointmentID: "appointment-1"})

		assert.NoError(t, err)
		assert.Equal(t, int64(50000), order.Amount, "amount must be the fee in the smallest unit")
		assert.Equal(t, "INR", order.Currency)
		assert.Equal(t, "appointment-1", order.Receipt, "receipt must tie the order to the appointment")
	})

	t.Run("Fractional Fee Rounds To Nearest Minor Unit", func(t *testing.T) {
		fx := newFixture()
		fx.appointments.appointments["appointment-1"].Amount = 499.99

		order, err := fx.usecase.CreatePaymentOrder(context.Background(), "user-1", &requests.CreatePaymentOrder{AppointmentID: "appointment-1"})

		assert.NoError(t, err)
		assert.Equal(t, int64(49999), order.Amount, "conversion to minor units must round, not truncate")
	})

	t.Run("Cancelled Appointment Rejected", func(t *testing.T) {
		fx := newFixture()
		fx.appointments.appointments["appointment-1"].Cancelled = true

		_, err := fx.usecase.CreatePaymentOrder(context.Background(), "user-1", &requests.CreatePaymentOrder{AppointmentID: "appointment-1"})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAppointmentNotExist, customErr.ClientMessage)
		assert.Empty(t, fx.gateway.createdOrders, "no gateway order may be created")
	})

	t.Run("Foreign User Rejected", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.usecase.CreatePaymentOrder(context.Background(), "user-2", &requests.CreatePaymentOrder{AppointmentID: "appointment-1"})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientUnauthorizedAction, customErr.ClientMessage)
	})
}

func TestVerifyPayment(t *testing.T) {
	signFor := func(orderID, paymentID string) string {
		return utils.ComputeGatewaySignature(orderID, paymentID, testKeySecret)
	}

	createOrder := func(fx *paymentFixture, status string) *responses.GatewayOrder {
		order, err := fx.gateway.CreateOrder(context.Background(), 50000, "INR", "appointment-1")
		if err != nil {
			panic(err)
		}
		order.Status = status
		return order
	}

	t.Run("Paid Order Marks Appointment", func(t *testing.T) {
		fx := newFixture()
		order := createOrder(fx, constvars.PaymentGatewayOrderStatusPaid)

		err := fx.usecase.VerifyPayment(context.Background(), "user-1", &requests.VerifyPayment{
			OrderID:   order.ID,
			PaymentID: "pay_1",
			Signature: signFor(order.ID, "pay_1"),
		})

		assert.NoError(t, err)
		assert.True(t, fx.appointments.appointments["appointment-1"].Payment)
		assert.Contains(t, fx.notifier.events, constvars.NotificationEventAppointmentPaid)
	})

	t.Run("Invalid Signature Rejected Before Any State Change", func(t *testing.T) {
		fx := newFixture()
		order := createOrder(fx, constvars.PaymentGatewayOrderStatusPaid)

		err := fx.usecase.VerifyPayment(context.Background(), "user-1", &requests.VerifyPayment{
			OrderID:   order.ID,
			PaymentID: "pay_1",
			Signature: "forged",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientPaymentSignatureInvalid, customErr.ClientMessage)
		assert.False(t, fx.appointments.appointments["appointment-1"].Payment)
	})

	t.Run("Unpaid Order Leaves Appointment Unpaid", func(t *testing.T) {
		fx := newFixture()
		order := createOrder(fx, "created")

		err := fx.usecase.VerifyPayment(context.Background(), "user-1", &requests.VerifyPayment{
			OrderID:   order.ID,
			PaymentID: "pay_1",
			Signature: signFor(order.ID, "pay_1"),
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientPaymentNotCompleted, customErr.ClientMessage)
		assert.False(t, fx.appointments.appointments["appointment-1"].Payment)
	})

	t.Run("Foreign User Cannot Verify", func(t *testing.T) {
		fx := newFixture()
		order := createOrder(fx, constvars.PaymentGatewayOrderStatusPaid)

		err := fx.usecase.VerifyPayment(context.Background(), "user-2", &requests.VerifyPayment{
			OrderID:   order.ID,
			PaymentID: "pay_1",
			Signature: signFor(order.ID, "pay_1"),
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientUnauthorizedAction, customErr.ClientMessage)
		assert.False(t, fx.appointments.appointments["appointment-1"].Payment)
	})
}
