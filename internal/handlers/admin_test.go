package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

func adminView(id uuid.UUID) *models.SessionView {
	return &models.SessionView{ID: id, Screen: models.ScreenAdmin, Admin: models.NewAdminState()}
}

func TestAdminViewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminViewSelector(ctrl)
	id := uuid.New()

	mockSvc.EXPECT().AdminSelectView(gomock.Any(), id, models.AdminTransactions).Return(adminView(id), nil)
	rr := httptest.NewRecorder()
	NewAdminViewHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, []byte(`{"view":"transactions"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewAdminViewHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, []byte(`nope`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockSvc.EXPECT().AdminSelectView(gomock.Any(), id, models.AdminView("users")).Return(nil, services.ErrInvalidTransition)
	rr = httptest.NewRecorder()
	NewAdminViewHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, []byte(`{"view":"users"}`)))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAdminEditHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminEditor(ctrl)
	id := uuid.New()

	editing := int64(4)
	view := adminView(id)
	view.Admin.EditingID = &editing
	mockSvc.EXPECT().AdminEdit(gomock.Any(), id, int64(4)).Return(view, nil)

	rr := httptest.NewRecorder()
	NewAdminEditHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, []byte(`{"id":4}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.SessionView
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, int64(4), *got.Admin.EditingID)
}

func TestAdminCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminCanceler(ctrl)
	id := uuid.New()
	mockSvc.EXPECT().AdminCancel(gomock.Any(), id).Return(adminView(id), nil)

	rr := httptest.NewRecorder()
	NewAdminCancelHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminFormSetter(ctrl)
	id := uuid.New()
	form := models.PaymentDetailForm{RecipientName: "Zhang Wei", AccountNumber: "6222", Currency: models.CNY, IsActive: true}
	mockSvc.EXPECT().AdminSetForm(gomock.Any(), id, form).Return(adminView(id), nil)

	body, _ := json.Marshal(form)
	rr := httptest.NewRecorder()
	NewAdminFormHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, body))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminSaveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminSaver(ctrl)
	id := uuid.New()

	view := adminView(id)
	view.Notifications = []models.Notification{{Level: models.NotificationError, Title: "Error", Message: "Fill in all fields"}}
	mockSvc.EXPECT().AdminSave(gomock.Any(), id).Return(view, nil)

	rr := httptest.NewRecorder()
	NewAdminSaveHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.SessionView
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Len(t, got.Notifications, 1)
}

func TestAdminDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminDeleter(ctrl)
	id := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "confirmed",
			body: `{"id":2,"confirmed":true}`,
			mockSetup: func() {
				mockSvc.EXPECT().AdminDelete(gomock.Any(), id, int64(2), true).Return(adminView(id), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unconfirmed is passed through",
			body: `{"id":2}`,
			mockSetup: func() {
				mockSvc.EXPECT().AdminDelete(gomock.Any(), id, int64(2), false).Return(adminView(id), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			body:         "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewAdminDeleteHandler(mockSvc).ServeHTTP(rr, newSessionRequest(http.MethodPost, "/", id, []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRelayFailuresHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRelayFailureLister(ctrl)
	txID := int64(7)
	failures := []models.RelayFailure{{ID: 1, Kind: models.RelayQRCode, TransactionID: &txID, Error: "relay down"}}

	tests := []struct {
		name         string
		query        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "default limit",
			mockSetup: func() {
				mockSvc.EXPECT().RecentFailures(gomock.Any(), 50).Return(failures, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "custom limit",
			query: "?limit=5",
			mockSetup: func() {
				mockSvc.EXPECT().RecentFailures(gomock.Any(), 5).Return(failures, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad limit",
			query:        "?limit=-1",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "journal error",
			query: "?limit=5",
			mockSetup: func() {
				mockSvc.EXPECT().RecentFailures(gomock.Any(), 5).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewRelayFailuresHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/admin/relay-failures"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var got models.RelayFailuresResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, failures, got.Failures)
			}
		})
	}
}
