package exceptions

import (
	"medibook-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "is required",
	"day_slot": "must be one of the bookable day slots",
	"iso_date": "must be a calendar date in YYYY-MM-DD format",
	"role":     "must be either doctor, patient or admin",
	"email":    "must be a valid email address",
	"gt":       "must be greater than %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
}

var tagsWithParams = map[string]bool{
	"gt":  true,
	"min": true,
	"max": true,
}

// FormatFirstValidationError turns the first validator.v10 failure into a
// client-safe message.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()

	message, known := validationMessages[tag]
	if !known {
		message = "is invalid"
	}
	if tagsWithParams[tag] {
		message = strings.Replace(message, "%s", firstErr.Param(), 1)
	}
	return fieldName + " " + message
}
