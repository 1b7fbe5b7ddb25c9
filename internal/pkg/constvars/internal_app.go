package constvars

// DaySlots is the fixed catalogue of bookable times. Every doctor shares the
// same seven slots per day; availability is this list minus active bookings.
var DaySlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

const DateLayout = "2006-01-02"

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionDoctors      = "doctors"
)

const (
	RedisKeyDoctorList       = "doctors:all"
	RedisKeyDoctorDayLockFmt = "lock:slots:%s:%s"
)

const AppointmentIDURLParam = "appointmentID"
const DoctorIDURLParam = "doctorID"

const (
	EmailSubjectDoctorOnboarded = "Welcome aboard - your profile is pending approval"
	EmailBodyDoctorOnboardedFmt = "Hi %s,\n\nYour doctor account has been created and is awaiting approval. You will be able to receive bookings once an administrator approves your profile.\n"
)
