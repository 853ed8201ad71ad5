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
	"authlink/pkg/models"
)

func newTokenHandler(t *testing.T) (*TokenRequestHandler, *mocks.MockTokenAPI, *mocks.MockTokenRequestSpi) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	api := mocks.NewMockTokenAPI(ctrl)
	spi := mocks.NewMockTokenRequestSpi(ctrl)
	return NewTokenRequestHandler(api, spi, testLogger()), api, spi
}

func TestTokenDirectActionMapping(t *testing.T) {
	tests := []struct {
		name          string
		action        models.TokenAction
		wantStatus    int
		wantChallenge string
	}{
		{name: "ok", action: models.TokenActionOK, wantStatus: http.StatusOK},
		{name: "bad request", action: models.TokenActionBadRequest, wantStatus: http.StatusBadRequest},
		{name: "internal server error", action: models.TokenActionInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "invalid client", action: models.TokenActionInvalidClient, wantStatus: http.StatusUnauthorized, wantChallenge: `Basic realm="token"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, api, spi := newTokenHandler(t)
			spi.EXPECT().Properties().Return(nil)
			api.EXPECT().Token(gomock.Any(), gomock.Any()).
				Return(&models.TokenResponse{Action: tt.action, ResponseContent: "content"}, nil)

			res, err := handler.Handle(context.Background(), TokenRequestParams{Parameters: "grant_type=authorization_code&code=abc"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantChallenge, res.Headers.Get("WWW-Authenticate"))
		})
	}
}

func TestTokenForwardsClientCredentials(t *testing.T) {
	handler, api, spi := newTokenHandler(t)
	spi.EXPECT().Properties().Return([]models.Property{{Key: "plan", Value: "pro"}})
	api.EXPECT().Token(gomock.Any(), &models.TokenRequest{
		Parameters:   "grant_type=client_credentials",
		ClientID:     "client-1",
		ClientSecret: "s3cret",
		Properties:   []models.Property{{Key: "plan", Value: "pro"}},
	}).Return(&models.TokenResponse{Action: models.TokenActionOK, ResponseContent: `{"access_token":"at"}`}, nil)

	res, err := handler.Handle(context.Background(), TokenRequestParams{
		Parameters:   "grant_type=client_credentials",
		ClientID:     "client-1",
		ClientSecret: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"access_token":"at"}`, res.Body)
}

// A password grant whose credentials do not verify must end at the fail
// endpoint, never with a token.
func TestTokenPasswordGrantBadCredentials(t *testing.T) {
	handler, api, spi := newTokenHandler(t)
	spi.EXPECT().Properties().Return(nil)
	api.EXPECT().Token(gomock.Any(), gomock.Any()).Return(&models.TokenResponse{
		Action:   models.TokenActionPassword,
		Ticket:   "ticket-1",
		Username: "john",
		Password: "wrong",
	}, nil)
	spi.EXPECT().AuthenticateUser("john", "wrong").Return("")
	api.EXPECT().TokenFail(gomock.Any(), &models.TokenFailRequest{
		Ticket: "ticket-1",
		Reason: models.TokenFailReasonInvalidResourceOwnerCredentials,
	}).Return(&models.TokenFailResponse{
		Action:          models.TokenFailActionBadRequest,
		ResponseContent: `{"error":"invalid_grant"}`,
	}, nil)

	res, err := handler.Handle(context.Background(), TokenRequestParams{Parameters: "grant_type=password&username=john&password=wrong"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, `{"error":"invalid_grant"}`, res.Body)
}

func TestTokenPasswordGrantIssues(t *testing.T) {
	handler, api, spi := newTokenHandler(t)
	spi.EXPECT().Properties().Return(nil).Times(2)
	api.EXPECT().Token(gomock.Any(), gomock.Any()).Return(&models.TokenResponse{
		Action:   models.TokenActionPassword,
		Ticket:   "ticket-1",
		Username: "john",
		Password: "correct",
	}, nil)
	spi.EXPECT().AuthenticateUser("john", "correct").Return("user-1")
	api.EXPECT().TokenIssue(gomock.Any(), &models.TokenIssueRequest{
		Ticket:  "ticket-1",
		Subject: "user-1",
	}).Return(&models.TokenIssueResponse{
		Action:          models.TokenIssueActionOK,
		ResponseContent: `{"access_token":"at"}`,
	}, nil)

	res, err := handler.Handle(context.Background(), TokenRequestParams{Parameters: "grant_type=password&username=john&password=correct"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestTokenTransportFailure(t *testing.T) {
	handler, api, spi := newTokenHandler(t)
	spi.EXPECT().Properties().Return(nil)
	api.EXPECT().Token(gomock.Any(), gomock.Any()).Return(nil, errors.New("503 from upstream"))

	res, err := handler.Handle(context.Background(), TokenRequestParams{Parameters: "grant_type=authorization_code"})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Body, "server_error")
}

func TestTokenUnknownAction(t *testing.T) {
	handler, api, spi := newTokenHandler(t)
	spi.EXPECT().Properties().Return(nil)
	api.EXPECT().Token(gomock.Any(), gomock.Any()).Return(&models.TokenResponse{Action: "WAT"}, nil)

	res, err := handler.Handle(context.Background(), TokenRequestParams{Parameters: "grant_type=authorization_code"})
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Body, "/auth/token")
}
