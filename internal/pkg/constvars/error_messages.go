package constvars

// Client messages are safe to surface; dev messages go to logs only.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientSlotAlreadyBooked             = "The selected slot has just been taken, please pick another one"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientInvalidStatusTransition       = "The appointment cannot be moved to the requested status"
	ErrClientDoctorDayBusy                 = "The doctor's calendar is being updated, please try again in a moment"
	ErrClientInvalidImageFormat            = "Invalid image, please upload a valid image file"
)

const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Cannot parse JSON request body"
	ErrDevCannotParseDate           = "Cannot parse calendar date"
	ErrDevCannotMarshalJSON         = "Cannot marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "Cannot parse multipart form"
	ErrDevURLParamMissing           = "Missing URL parameter: %s"
	ErrDevMissingRequestID          = "Request ID not found in request context"
	ErrDevSlotNotInCatalogue        = "Slot is not part of the day slot catalogue"
	ErrDevSlotAlreadyBooked         = "Conditional write rejected: slot already booked for doctor/date"
	ErrDevAppointmentNotFound       = "No appointment exists with the given ID"
	ErrDevUnknownStatus             = "Unknown appointment status: %s"
	ErrDevInvalidStatusTransition   = "Status transition not allowed: %s -> %s"
	ErrDevRescheduleTargetMissing   = "Reschedule requires a target date and slot"
	ErrDevDoctorDayLocked           = "Doctor day lock held by another request"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded while processing request"
	ErrDevServerProcess             = "Unexpected server error"
	ErrDevAuthTokenMissing          = "Authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token invalid or expired"
	ErrDevHookAPIKeyInvalid         = "Hook API key missing or invalid"

	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBFailedToEnsureIndexes    = "MongoDB failed to ensure collection indexes"

	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
	ErrDevRedisSetNX      = "Redis failed to SETNX"
	ErrDevRedisUnlock     = "Redis lock release failed"

	ErrDevRabbitMQPublishMessage = "RabbitMQ failed to publish message to queue %s"
	ErrDevSMTPSendEmail          = "SMTP failed to send email through host %s"
	ErrDevMinioCreateObject      = "Minio failed to create object in bucket %s"
	ErrDevMinioPresignObject     = "Minio failed to presign object in bucket %s"
)
