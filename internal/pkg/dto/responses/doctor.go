package responses

import "time"

type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Fee            int       `json:"fee,omitempty"`
	Experience     int       `json:"experience,omitempty"`
	Image          string    `json:"image,omitempty"`
	IsApproved     bool      `json:"isApproved"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DoctorImage struct {
	DoctorID   string `json:"doctorId"`
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
}
