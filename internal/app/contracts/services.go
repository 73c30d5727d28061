package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
	"time"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}

type StorageService interface {
	UploadProfilePicture(ctx context.Context, userID string, data []byte, extension string) (string, error)
}

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*responses.GatewayOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*responses.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type NotificationService interface {
	PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error
}
