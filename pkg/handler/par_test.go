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

func newPARHandler(t *testing.T) (*PushedAuthReqHandler, *mocks.MockPushedAuthReqAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	api := mocks.NewMockPushedAuthReqAPI(ctrl)
	return NewPushedAuthReqHandler(api, testLogger()), api
}

func TestPushedAuthReqActionMapping(t *testing.T) {
	tests := []struct {
		name          string
		action        models.PushedAuthReqAction
		wantStatus    int
		wantChallenge string
	}{
		{name: "created", action: models.PushedAuthReqActionCreated, wantStatus: http.StatusCreated},
		{name: "bad request", action: models.PushedAuthReqActionBadRequest, wantStatus: http.StatusBadRequest},
		{name: "internal server error", action: models.PushedAuthReqActionInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "unauthorized", action: models.PushedAuthReqActionUnauthorized, wantStatus: http.StatusUnauthorized, wantChallenge: `Basic realm="pushed_auth_req"`},
		{name: "forbidden", action: models.PushedAuthReqActionForbidden, wantStatus: http.StatusForbidden},
		{name: "payload too large", action: models.PushedAuthReqActionPayloadTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, api := newPARHandler(t)
			api.EXPECT().PushedAuthReq(gomock.Any(), &models.PushedAuthReqRequest{
				Parameters: "response_type=code&client_id=client-1",
				ClientID:   "client-1",
			}).Return(&models.PushedAuthReqResponse{Action: tt.action, ResponseContent: "content"}, nil)

			res, err := handler.Handle(context.Background(), PushedAuthReqParams{
				Parameters: "response_type=code&client_id=client-1",
				ClientID:   "client-1",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantChallenge, res.Headers.Get("WWW-Authenticate"))
		})
	}
}

func TestPushedAuthReqCreatedBody(t *testing.T) {
	handler, api := newPARHandler(t)
	api.EXPECT().PushedAuthReq(gomock.Any(), gomock.Any()).Return(&models.PushedAuthReqResponse{
		Action:          models.PushedAuthReqActionCreated,
		ResponseContent: `{"request_uri":"urn:ietf:params:oauth:request_uri:abc","expires_in":90}`,
	}, nil)

	res, err := handler.Handle(context.Background(), PushedAuthReqParams{Parameters: "response_type=code"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, res.Body, "request_uri")
}

func TestPushedAuthReqTransportFailure(t *testing.T) {
	handler, api := newPARHandler(t)
	api.EXPECT().PushedAuthReq(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	res, err := handler.Handle(context.Background(), PushedAuthReqParams{Parameters: "response_type=code"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
