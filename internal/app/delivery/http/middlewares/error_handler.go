package middlewares

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RecoverPanic turns a handler panic into a 500 response instead of killing
// the connection.
func (m *Middlewares) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				requestID := r.Context().Value(constvars.ContextRequestIDKey)
				m.Log.Error("panic recovered while handling request",
					zap.Any(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingMethodKey, r.Method),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Any("panic", recovered),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(fmt.Errorf("panic: %v", recovered)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
