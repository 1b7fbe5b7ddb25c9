package middlewares

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HookAPIKey guards the identity-provider hook endpoints. Only the bcrypt hash
// of the key is configured, so a leaked config cannot replay the hook.
func (m *Middlewares) HookAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrHookAPIKeyInvalid(nil))
			return
		}

		err := bcrypt.CompareHashAndPassword([]byte(m.InternalConfig.App.HookAPIKeyHash), []byte(apiKey))
		if err != nil {
			requestID := r.Context().Value(constvars.ContextRequestIDKey)
			m.Log.Warn("hook called with invalid API key",
				zap.Any(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrHookAPIKeyInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextHookAuthenticated, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
