package constvars

const (
	AppointmentBookedSuccess  = "Successfully booked appointment"
	AppointmentListSuccess    = "Successfully fetched appointments"
	AppointmentSlotsSuccess   = "Successfully fetched available slots"
	AppointmentUpdatedSuccess = "Successfully updated appointment"
	DoctorListSuccess         = "Successfully fetched doctors"
	DoctorCreatedSuccess      = "Successfully created doctor"
	DoctorImageUploadSuccess  = "Successfully uploaded doctor image"
	HookProcessedSuccess      = "Successfully processed confirmation"
)
