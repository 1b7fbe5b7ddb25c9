package models

import "time"

type Doctor struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Specialization string    `json:"specialization" bson:"specialization"`
	Fee            int       `json:"fee,omitempty" bson:"fee,omitempty"`
	Experience     int       `json:"experience,omitempty" bson:"experience,omitempty"`
	Image          string    `json:"image,omitempty" bson:"image,omitempty"`
	IsApproved     bool      `json:"isApproved" bson:"isApproved"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
