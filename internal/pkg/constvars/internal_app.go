package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
)

const (
	// RedisKeyDoctorSlotLock serializes check-and-reserve sequences per doctor.
	RedisKeyDoctorSlotLock = "medibook:lock:doctor:%s"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	PaymentGatewayOrderStatusPaid = "paid"
)

const (
	NotificationEventAppointmentBooked    = "appointment.booked"
	NotificationEventAppointmentCancelled = "appointment.cancelled"
	NotificationEventAppointmentPaid      = "appointment.paid"
)

var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png", ".webp"}
