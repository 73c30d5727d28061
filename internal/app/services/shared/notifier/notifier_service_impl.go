package notifier

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notifierServiceInstance contracts.NotificationService
	onceNotifierService     sync.Once
)

type rabbitMQNotifier struct {
	Channel   *amqp.Channel
	QueueName string
	Log       *zap.Logger
}

// appointmentEvent is the message body consumed by the notification worker.
type appointmentEvent struct {
	EventType     string    `json:"event_type"`
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	DoctorID      string    `json:"doctor_id"`
	SlotDate      string    `json:"slot_date"`
	SlotTime      string    `json:"slot_time"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewRabbitMQNotifier(channel *amqp.Channel, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.NotificationService {
	onceNotifierService.Do(func() {
		instance := &rabbitMQNotifier{
			Channel:   channel,
			QueueName: internalConfig.RabbitMQ.NotificationQueue,
			Log:       logger,
		}
		notifierServiceInstance = instance
	})
	return notifierServiceInstance
}

func (s *rabbitMQNotifier) PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("rabbitMQNotifier.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	_, err := s.Channel.QueueDeclare(
		s.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.QueueName)
	}

	event := appointmentEvent{
		EventType:     eventType,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		DoctorID:      appointment.DoctorID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
		Amount:        appointment.Amount,
		OccurredAt:    time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.Channel.PublishWithContext(
		ctx,
		"",
		s.QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		s.Log.Error("rabbitMQNotifier.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.QueueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.QueueName)
	}

	s.Log.Info("rabbitMQNotifier.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.QueueName),
	)
	return nil
}
