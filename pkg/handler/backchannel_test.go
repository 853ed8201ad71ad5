package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authlink/pkg/handler/mocks"
	"authlink/pkg/models"
)

func newBackchannelMocks(t *testing.T) (*mocks.MockBackchannelAPI, *mocks.MockBackchannelAuthenticationSpi, *mocks.MockCompleteRequestSpi) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockBackchannelAPI(ctrl), mocks.NewMockBackchannelAuthenticationSpi(ctrl), mocks.NewMockCompleteRequestSpi(ctrl)
}

func TestBackchannelAuthenticationAccepted(t *testing.T) {
	api, spi, _ := newBackchannelMocks(t)
	remote := &models.BackchannelAuthenticationResponse{
		Action: models.BackchannelAuthenticationActionOK,
		Ticket: "ticket-1",
		Hint:   "john@example.com",
	}
	api.EXPECT().BackchannelAuthentication(gomock.Any(), gomock.Any()).Return(remote, nil)
	spi.EXPECT().StartUserAuthentication(remote)
	api.EXPECT().BackchannelAuthenticationIssue(gomock.Any(), &models.BackchannelIssueRequest{Ticket: "ticket-1"}).
		Return(&models.BackchannelIssueResponse{
			Action:          models.BackchannelIssueActionOK,
			ResponseContent: `{"auth_req_id":"req-1","expires_in":600}`,
		}, nil)

	handler := NewBackchannelAuthenticationRequestHandler(api, spi, testLogger())
	res, err := handler.Handle(context.Background(), BackchannelAuthenticationParams{
		Parameters: "login_hint=john%40example.com&scope=openid",
		ClientID:   "ciba-client",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"auth_req_id":"req-1","expires_in":600}`, res.Body)
}

func TestBackchannelAuthenticationRejected(t *testing.T) {
	tests := []struct {
		name          string
		action        models.BackchannelAuthenticationAction
		wantStatus    int
		wantChallenge string
	}{
		{name: "bad request", action: models.BackchannelAuthenticationActionBadRequest, wantStatus: http.StatusBadRequest},
		{name: "internal server error", action: models.BackchannelAuthenticationActionInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "unauthorized", action: models.BackchannelAuthenticationActionUnauthorized, wantStatus: http.StatusUnauthorized, wantChallenge: `Basic realm="backchannel/authentication"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, spi, _ := newBackchannelMocks(t)
			api.EXPECT().BackchannelAuthentication(gomock.Any(), gomock.Any()).
				Return(&models.BackchannelAuthenticationResponse{Action: tt.action}, nil)

			handler := NewBackchannelAuthenticationRequestHandler(api, spi, testLogger())
			res, err := handler.Handle(context.Background(), BackchannelAuthenticationParams{Parameters: "scope=openid"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantChallenge, res.Headers.Get("WWW-Authenticate"))
		})
	}
}

func TestBackchannelAuthenticationInvalidTicket(t *testing.T) {
	api, spi, _ := newBackchannelMocks(t)
	remote := &models.BackchannelAuthenticationResponse{
		Action: models.BackchannelAuthenticationActionOK,
		Ticket: "ticket-1",
	}
	api.EXPECT().BackchannelAuthentication(gomock.Any(), gomock.Any()).Return(remote, nil)
	spi.EXPECT().StartUserAuthentication(remote)
	api.EXPECT().BackchannelAuthenticationIssue(gomock.Any(), gomock.Any()).
		Return(&models.BackchannelIssueResponse{Action: models.BackchannelIssueActionInvalidTicket}, nil)

	handler := NewBackchannelAuthenticationRequestHandler(api, spi, testLogger())
	res, err := handler.Handle(context.Background(), BackchannelAuthenticationParams{Parameters: "scope=openid"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestBackchannelCompleteDeliversNotification(t *testing.T) {
	var gotAuth string
	var gotBody string
	notificationServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer notificationServer.Close()

	api, _, spi := newBackchannelMocks(t)
	spi.EXPECT().UserClaimValue("user-1", "name", "").Return("John")
	spi.EXPECT().Properties().Return(nil)
	spi.EXPECT().Scopes().Return(nil)
	api.EXPECT().BackchannelAuthenticationComplete(gomock.Any(), &models.BackchannelCompleteRequest{
		Ticket:   "ticket-1",
		Result:   models.CompleteResultAuthorized,
		Subject:  "user-1",
		AuthTime: 1700000000,
		Claims:   `{"name":"John"}`,
	}).Return(&models.BackchannelCompleteResponse{
		Action:                     models.BackchannelCompleteActionNotification,
		ResponseContent:            `{"auth_req_id":"req-1"}`,
		ClientNotificationToken:    "notif-token",
		ClientNotificationEndpoint: notificationServer.URL,
	}, nil)

	handler := NewBackchannelCompleteHandler(api, spi, testLogger(), notificationServer.Client())
	action, err := handler.Handle(context.Background(), BackchannelCompleteParams{
		Ticket:     "ticket-1",
		Result:     models.CompleteResultAuthorized,
		Subject:    "user-1",
		AuthTime:   1700000000,
		ClaimNames: []string{"name"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.BackchannelCompleteActionNotification, action)
	assert.Equal(t, "Bearer notif-token", gotAuth)
	assert.Equal(t, `{"auth_req_id":"req-1"}`, gotBody)
}

func TestBackchannelCompleteNotificationRejectionTolerated(t *testing.T) {
	notificationServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer notificationServer.Close()

	api, _, spi := newBackchannelMocks(t)
	api.EXPECT().BackchannelAuthenticationComplete(gomock.Any(), gomock.Any()).
		Return(&models.BackchannelCompleteResponse{
			Action:                     models.BackchannelCompleteActionNotification,
			ClientNotificationEndpoint: notificationServer.URL,
			ClientNotificationToken:    "notif-token",
		}, nil)

	handler := NewBackchannelCompleteHandler(api, spi, testLogger(), notificationServer.Client())
	action, err := handler.Handle(context.Background(), BackchannelCompleteParams{
		Ticket: "ticket-1",
		Result: models.CompleteResultAccessDenied,
	})
	// A rejected notification is logged, not surfaced as a failure.
	require.NoError(t, err)
	assert.Equal(t, models.BackchannelCompleteActionNotification, action)
}

func TestBackchannelCompleteNoAction(t *testing.T) {
	api, _, spi := newBackchannelMocks(t)
	api.EXPECT().BackchannelAuthenticationComplete(gomock.Any(), &models.BackchannelCompleteRequest{
		Ticket:           "ticket-1",
		Result:           models.CompleteResultTransactionFailed,
		ErrorDescription: "authentication device unreachable",
	}).Return(&models.BackchannelCompleteResponse{Action: models.BackchannelCompleteActionNoAction}, nil)

	handler := NewBackchannelCompleteHandler(api, spi, testLogger(), nil)
	action, err := handler.Handle(context.Background(), BackchannelCompleteParams{
		Ticket:           "ticket-1",
		Result:           models.CompleteResultTransactionFailed,
		ErrorDescription: "authentication device unreachable",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BackchannelCompleteActionNoAction, action)
}
