package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
)

// AdminLoginer defines the interface that the login service must implement.
type AdminLoginer interface {
	Login(ctx context.Context, key string) (string, error)
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Exchange the admin key for a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Login Request"
// @Success 200 {object} models.AdminLoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 404 {object} models.ErrorResponse "Admin login is not configured"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AdminLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Key)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAdminKey):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Invalid admin key",
				})
			case errors.Is(err, services.ErrAdminLoginDisabled):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Admin login is not configured",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.AdminLoginResponse{
			Token: token,
		})
	}
}
