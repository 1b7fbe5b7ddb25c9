package requests

type CreateDoctor struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization" validate:"required"`
	Fee            int    `json:"fee" validate:"omitempty,gt=0"`
	Experience     int    `json:"experience"`
	Image          string `json:"image"`
}

// PostConfirmation carries the attributes the identity provider hands to the
// post-confirmation hook after a signup is confirmed.
type PostConfirmation struct {
	UserID         string `json:"userId" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone"`
	Role           string `json:"role" validate:"required,role"`
	Specialization string `json:"specialization"`
}
