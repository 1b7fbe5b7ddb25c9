package constvars

type ContextKey string

const (
	ContextRequestIDKey      ContextKey = "request_id"
	ContextIsClientRequestID ContextKey = "is_client_request_id"
	ContextIdentityKey       ContextKey = "identity"
	ContextHookAuthenticated ContextKey = "hook_authenticated"
)

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingResponseKey         = "response"
	LoggingResponseLengthKey   = "response_length"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingDateKey             = "date"
	LoggingSlotKey             = "slot"
	LoggingStatusKey           = "status"
	LoggingRoleKey             = "role"
	LoggingUserIDKey           = "user_id"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingQueueKey            = "queue"
	LoggingRecipientKey        = "recipient"
	LoggingObjectNameKey       = "object_name"
)
