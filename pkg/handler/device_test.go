package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authlink/pkg/handler/mocks"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

func newDeviceMocks(t *testing.T) (*mocks.MockDeviceAPI, *mocks.MockDeviceVerificationSpi, *mocks.MockCompleteRequestSpi) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockDeviceAPI(ctrl), mocks.NewMockDeviceVerificationSpi(ctrl), mocks.NewMockCompleteRequestSpi(ctrl)
}

func TestDeviceAuthorizationActionMapping(t *testing.T) {
	tests := []struct {
		name          string
		action        models.DeviceAuthorizationAction
		wantStatus    int
		wantChallenge string
	}{
		{name: "ok", action: models.DeviceAuthorizationActionOK, wantStatus: http.StatusOK},
		{name: "bad request", action: models.DeviceAuthorizationActionBadRequest, wantStatus: http.StatusBadRequest},
		{name: "internal server error", action: models.DeviceAuthorizationActionInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "unauthorized", action: models.DeviceAuthorizationActionUnauthorized, wantStatus: http.StatusUnauthorized, wantChallenge: `Basic realm="device"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _, _ := newDeviceMocks(t)
			api.EXPECT().DeviceAuthorization(gomock.Any(), &models.DeviceAuthorizationRequest{
				Parameters: "client_id=device-client&scope=openid",
				ClientID:   "device-client",
			}).Return(&models.DeviceAuthorizationResponse{Action: tt.action}, nil)

			handler := NewDeviceAuthorizationHandler(api, testLogger())
			res, err := handler.Handle(context.Background(), DeviceAuthorizationParams{
				Parameters: "client_id=device-client&scope=openid",
				ClientID:   "device-client",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantChallenge, res.Headers.Get("WWW-Authenticate"))
		})
	}
}

func TestDeviceVerificationValidRendersPage(t *testing.T) {
	api, spi, _ := newDeviceMocks(t)
	remote := &models.DeviceVerificationResponse{
		Action:     models.DeviceVerificationActionValid,
		ClientName: "TV App",
		Scopes:     []string{"openid"},
	}
	api.EXPECT().DeviceVerification(gomock.Any(), &models.DeviceVerificationRequest{UserCode: "WDJB-MJHT"}).
		Return(remote, nil)
	spi.EXPECT().GenerateVerificationPage(remote).Return(httputil.OKHTML("<html>approve?</html>"), nil)

	handler := NewDeviceVerificationHandler(api, spi, testLogger())
	res, action, err := handler.Handle(context.Background(), "WDJB-MJHT")
	require.NoError(t, err)
	assert.Equal(t, models.DeviceVerificationActionValid, action)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDeviceVerificationHostRenderedOutcomes(t *testing.T) {
	for _, action := range []models.DeviceVerificationAction{
		models.DeviceVerificationActionBadRequest,
		models.DeviceVerificationActionExpired,
		models.DeviceVerificationActionNotExist,
	} {
		t.Run(string(action), func(t *testing.T) {
			api, spi, _ := newDeviceMocks(t)
			api.EXPECT().DeviceVerification(gomock.Any(), gomock.Any()).
				Return(&models.DeviceVerificationResponse{Action: action}, nil)

			handler := NewDeviceVerificationHandler(api, spi, testLogger())
			res, got, err := handler.Handle(context.Background(), "WDJB-MJHT")
			require.NoError(t, err)
			// The host shows its own page for these.
			assert.Nil(t, res)
			assert.Equal(t, action, got)
		})
	}
}

func TestDeviceCompleteAuthorized(t *testing.T) {
	api, _, spi := newDeviceMocks(t)
	spi.EXPECT().UserClaimValue("user-1", "name", "").Return("John")
	spi.EXPECT().Properties().Return(nil)
	spi.EXPECT().Scopes().Return([]string{"openid"})

	api.EXPECT().DeviceComplete(gomock.Any(), &models.DeviceCompleteRequest{
		UserCode: "WDJB-MJHT",
		Result:   models.CompleteResultAuthorized,
		Subject:  "user-1",
		AuthTime: 1700000000,
		Claims:   `{"name":"John"}`,
		Scopes:   []string{"openid"},
	}).Return(&models.DeviceCompleteResponse{Action: models.DeviceCompleteActionSuccess}, nil)

	handler := NewDeviceCompleteHandler(api, spi, testLogger())
	action, err := handler.Handle(context.Background(), DeviceCompleteParams{
		UserCode:   "WDJB-MJHT",
		Result:     models.CompleteResultAuthorized,
		Subject:    "user-1",
		AuthTime:   1700000000,
		ClaimNames: []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceCompleteActionSuccess, action)
}

func TestDeviceCompleteDeniedOmitsIssuancePayload(t *testing.T) {
	api, _, spi := newDeviceMocks(t)
	api.EXPECT().DeviceComplete(gomock.Any(), &models.DeviceCompleteRequest{
		UserCode: "WDJB-MJHT",
		Result:   models.CompleteResultAccessDenied,
	}).Return(&models.DeviceCompleteResponse{Action: models.DeviceCompleteActionSuccess}, nil)

	handler := NewDeviceCompleteHandler(api, spi, testLogger())
	action, err := handler.Handle(context.Background(), DeviceCompleteParams{
		UserCode: "WDJB-MJHT",
		Result:   models.CompleteResultAccessDenied,
		// Ignored because the decision is a denial.
		Subject:    "user-1",
		ClaimNames: []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceCompleteActionSuccess, action)
}

func TestDeviceCompleteTransportFailure(t *testing.T) {
	api, _, spi := newDeviceMocks(t)
	api.EXPECT().DeviceComplete(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	handler := NewDeviceCompleteHandler(api, spi, testLogger())
	action, err := handler.Handle(context.Background(), DeviceCompleteParams{
		UserCode: "WDJB-MJHT",
		Result:   models.CompleteResultTransactionFailed,
	})
	require.Error(t, err)
	assert.Equal(t, models.DeviceCompleteActionServerError, action)
}
