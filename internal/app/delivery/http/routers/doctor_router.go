package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.With(middlewares.Authenticate).Post("/", doctorController.Create)
	router.With(middlewares.Authenticate).Post("/{"+constvars.DoctorIDURLParam+"}/image", doctorController.UploadImage)
}
