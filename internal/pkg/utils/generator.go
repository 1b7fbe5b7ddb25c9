package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateAppointmentID() string {
	return uuid.NewString()
}

func GenerateDoctorID() string {
	return uuid.NewString()
}

// GenerateImageObjectName builds a collision-free object name for a doctor
// profile image, keeping the original extension.
func GenerateImageObjectName(doctorID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("doctor_%s_%s%s", doctorID, timestamp, fileExtension)
}
