package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingRequestKey            = "request"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingUserIDKey             = "user_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingSlotDateKey           = "slot_date"
	LoggingSlotTimeKey           = "slot_time"
	LoggingOrderIDKey            = "order_id"
	LoggingRedisKey              = "redis_key"
	LoggingQueueNameKey          = "queue_name"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingEventTypeKey          = "event_type"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
)
