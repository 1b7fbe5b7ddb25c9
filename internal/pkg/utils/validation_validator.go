package utils

import (
	"medibook-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("day_slot", validateDaySlot)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDaySlot(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, slot := range constvars.DaySlots {
		if slot == value {
			return true
		}
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RolePatient || value == constvars.RoleAdmin
}
