package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"datetime": "must match the expected date format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUserNotExist                  = "user does not exist, please register"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientDoctorNotExist                = "doctor does not exist"
	ErrClientDoctorNotAvailable            = "doctor is not available"
	ErrClientSlotUnavailable               = "slot unavailable"
	ErrClientAppointmentNotExist           = "appointment cancelled or not found"
	ErrClientUnauthorizedAction            = "unauthorized action"
	ErrClientPaidAppointment               = "paid appointment cannot be cancelled"
	ErrClientPaymentNotCompleted           = "payment failed"
	ErrClientPaymentSignatureInvalid       = "payment could not be verified"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevDoctorNotExists          = "doctor not exists in our system"
	ErrDevDoctorNotAvailable       = "doctor availability flag is off"
	ErrDevSlotAlreadyBooked        = "slot already booked for the requested doctor, date and time"
	ErrDevSlotLockNotAcquired      = "could not acquire the doctor slot lock"
	ErrDevAppointmentNotExists     = "appointment not exists or already cancelled"
	ErrDevAppointmentOwnership     = "appointment belongs to a different user"
	ErrDevAppointmentAlreadyPaid   = "appointment already paid, cancellation blocked"
	ErrDevServerDeadlineExceeded   = "server process exceeded the given deadline"
	ErrDevServerProcess            = "something went wrong while server processing the data"

	// Authentication messages
	ErrDevAuthGenerateToken         = "failed to generate the token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "authorization token not found within request header"
	ErrDevAuthTokenInvalid          = "token invalid"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthIdentityMismatch      = "caller-supplied user id does not match token identity"

	// Mongo DB messages
	ErrDevDBFailedToFindDocument    = "failed to find document on mongoDB"
	ErrDevDBFailedToInsertDocument  = "failed to insert document on mongoDB"
	ErrDevDBFailedToUpdateDocument  = "failed to update document on mongoDB"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document on mongoDB"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents on mongoDB"
	ErrDevDBStringNotObjectID       = "given string cannot be converted to mongoDB ObjectID"

	// Redis messages
	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisLockNotOwned  = "lock not owned by this client"
	ErrDevRedisGetNoData     = "failed to get data from redis with key %s"
	ErrDevRedisSetNXFailed   = "failed to run SETNX on redis"
	ErrDevRedisReleaseFailed = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object within bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Payment gateway messages
	ErrDevGatewayCreateOrder      = "failed to create order on payment gateway"
	ErrDevGatewayFetchOrder       = "failed to fetch order from payment gateway"
	ErrDevGatewayDecodeResponse   = "failed to decode payment gateway response"
	ErrDevGatewaySignatureInvalid = "payment signature does not match the expected digest"
	ErrDevGatewayOrderNotPaid     = "gateway order status is not paid"

	// HTTP messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
)
