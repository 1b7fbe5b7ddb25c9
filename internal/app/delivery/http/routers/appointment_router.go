package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.Book)
	router.With(middlewares.AuthenticateOptional).Get("/", appointmentController.FindAll)
	router.Get("/slots", appointmentController.AvailableSlots)
	router.With(middlewares.Authenticate).Patch("/{"+constvars.AppointmentIDURLParam+"}", appointmentController.UpdateStatus)
}
