package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAdminLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: models.AdminLoginRequest{Key: "s3cret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "s3cret").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.AdminLoginResponse{
				Token: "JWT_TOKEN",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name:      "wrong key",
			inputBody: models.AdminLoginRequest{Key: "guess"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "guess").
					Return("", services.ErrInvalidAdminKey)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &models.ErrorResponse{
				Error: "Invalid admin key",
			},
		},
		{
			name:      "login disabled",
			inputBody: models.AdminLoginRequest{Key: "s3cret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "s3cret").
					Return("", services.ErrAdminLoginDisabled)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &models.ErrorResponse{
				Error: "Admin login is not configured",
			},
		},
		{
			name:      "internal error",
			inputBody: models.AdminLoginRequest{Key: "s3cret"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "s3cret").
					Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &models.ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewAdminLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			switch expected := tt.expectedBody.(type) {
			case *models.AdminLoginResponse:
				var resp models.AdminLoginResponse
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, expected.Token, resp.Token)
			case *models.ErrorResponse:
				var resp models.ErrorResponse
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, expected.Error, resp.Error)
			}
		})
	}
}
