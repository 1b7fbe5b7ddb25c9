package middlewares

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type identityClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticate requires a valid bearer token and stores the caller identity in
// the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.identityFromRequest(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateOptional lets anonymous requests through but still rejects a
// token that is present and invalid.
func (m *Middlewares) AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(constvars.HeaderAuthorization) == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.identityFromRequest(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) identityFromRequest(r *http.Request) (*models.Identity, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token"))
	}

	claims := new(identityClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(m.InternalConfig.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	return &models.Identity{
		UserID: claims.Subject,
		Role:   claims.Role,
		Name:   claims.Name,
	}, nil
}
