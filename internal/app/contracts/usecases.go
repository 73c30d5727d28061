package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (string, error)
	Login(ctx context.Context, request *requests.Login) (string, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, userID string, request *requests.BookAppointment) (*models.Appointment, error)
	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, userID string, request *requests.CancelAppointment) error
}

type PaymentUsecase interface {
	CreatePaymentOrder(ctx context.Context, userID string, request *requests.CreatePaymentOrder) (*responses.GatewayOrder, error)
	VerifyPayment(ctx context.Context, userID string, request *requests.VerifyPayment) error
}
