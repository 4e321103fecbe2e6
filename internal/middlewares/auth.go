package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-topup-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type adminCtxKey struct{}

// ContextWithAdmin marks ctx as carrying an authorized admin.
func ContextWithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminCtxKey{}, true)
}

// IsAdmin reports whether AdminIdentityMiddleware authorized the request.
func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(adminCtxKey{}).(bool)
	return ok
}

// AdminAuthMiddleware returns a middleware that lets through only tokens issued to subject.
// When enabled is false every request passes.
func AdminAuthMiddleware(tokener Tokener, subject string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authorize(tokener, subject, r); err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminIdentityMiddleware never rejects. It marks the request context with ContextWithAdmin
// when the bearer token belongs to subject, or for every request when enabled is false.
func AdminIdentityMiddleware(tokener Tokener, subject string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || authorize(tokener, subject, r) == nil {
				r = r.WithContext(ContextWithAdmin(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authorize(tokener Tokener, subject string, r *http.Request) error {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return err
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.Subject != subject {
		return fmt.Errorf("%w: subject %q", jwt.ErrInvalidToken, claims.Subject)
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Unauthorized"})
}
