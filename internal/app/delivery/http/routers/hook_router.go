package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachHookRoutes(router chi.Router, middlewares *middlewares.Middlewares, hookController *controllers.HookController) {
	router.With(middlewares.HookAPIKey).Post("/post-confirmation", hookController.PostConfirmation)
}
