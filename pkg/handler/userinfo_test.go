package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authlink/pkg/handler/mocks"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

func newUserInfoHandler(t *testing.T) (*UserInfoRequestHandler, *mocks.MockUserInfoAPI, *mocks.MockUserInfoRequestSpi) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	api := mocks.NewMockUserInfoAPI(ctrl)
	spi := mocks.NewMockUserInfoRequestSpi(ctrl)
	return NewUserInfoRequestHandler(api, spi, testLogger()), api, spi
}

func TestUserInfoMissingToken(t *testing.T) {
	handler, _, _ := newUserInfoHandler(t)

	res, err := handler.Handle(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, res.Headers.Get("WWW-Authenticate"), "Bearer")
	assert.Empty(t, res.Body)
}

func TestUserInfoChallengeDelivery(t *testing.T) {
	tests := []struct {
		name       string
		action     models.UserInfoAction
		wantStatus int
	}{
		{name: "internal server error", action: models.UserInfoActionInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "bad request", action: models.UserInfoActionBadRequest, wantStatus: http.StatusBadRequest},
		{name: "unauthorized", action: models.UserInfoActionUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", action: models.UserInfoActionForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, api, _ := newUserInfoHandler(t)
			api.EXPECT().UserInfo(gomock.Any(), &models.UserInfoRequest{Token: "at-1"}).
				Return(&models.UserInfoResponse{Action: tt.action, ResponseContent: `Bearer error="invalid_token"`}, nil)

			res, err := handler.Handle(context.Background(), "at-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			// The challenge travels in the header, not the body.
			assert.Equal(t, `Bearer error="invalid_token"`, res.Headers.Get("WWW-Authenticate"))
			assert.Empty(t, res.Body)
		})
	}
}

func TestUserInfoIssuesJSON(t *testing.T) {
	handler, api, spi := newUserInfoHandler(t)
	api.EXPECT().UserInfo(gomock.Any(), gomock.Any()).Return(&models.UserInfoResponse{
		Action:        models.UserInfoActionOK,
		Subject:       "user-1",
		Claims:        []string{"name", "email"},
		ClaimsLocales: []string{"en"},
		Token:         "at-1",
	}, nil)
	spi.EXPECT().PrepareUserClaims("user-1", []string{"name", "email"})
	spi.EXPECT().UserClaimValue("user-1", "name", "en").Return("John")
	spi.EXPECT().UserClaimValue("user-1", "email", "en").Return(nil)
	spi.EXPECT().UserClaimValue("user-1", "email", "").Return("john@example.com")

	api.EXPECT().UserInfoIssue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.UserInfoIssueRequest) (*models.UserInfoIssueResponse, error) {
			assert.Equal(t, "at-1", req.Token)
			assert.JSONEq(t, `{"name":"John","email":"john@example.com"}`, req.Claims)
			return &models.UserInfoIssueResponse{
				Action:          models.UserInfoIssueActionJSON,
				ResponseContent: `{"sub":"user-1","name":"John"}`,
			}, nil
		})

	res, err := handler.Handle(context.Background(), "at-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, httputil.ContentTypeJSON, res.Headers.Get("Content-Type"))
}

func TestUserInfoIssuesJWT(t *testing.T) {
	// The remote service signs the response; the handler passes the compact
	// serialization through untouched under the JWT content type.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"name": "John",
	})
	signed, err := token.SignedString([]byte("remote-signing-key"))
	require.NoError(t, err)

	handler, api, spi := newUserInfoHandler(t)
	api.EXPECT().UserInfo(gomock.Any(), gomock.Any()).Return(&models.UserInfoResponse{
		Action:  models.UserInfoActionOK,
		Subject: "user-1",
		Claims:  []string{"name"},
		Token:   "at-1",
	}, nil)
	spi.EXPECT().PrepareUserClaims("user-1", []string{"name"})
	spi.EXPECT().UserClaimValue("user-1", "name", "").Return("John")
	api.EXPECT().UserInfoIssue(gomock.Any(), gomock.Any()).Return(&models.UserInfoIssueResponse{
		Action:          models.UserInfoIssueActionJWT,
		ResponseContent: signed,
	}, nil)

	res, err := handler.Handle(context.Background(), "at-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, httputil.ContentTypeJWT, res.Headers.Get("Content-Type"))
	assert.Equal(t, signed, res.Body)

	// The body must still parse as the JWT the remote service produced.
	parsed, err := jwt.Parse(res.Body, func(*jwt.Token) (any, error) {
		return []byte("remote-signing-key"), nil
	})
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestUserInfoNoClaimsSkipsCollection(t *testing.T) {
	handler, api, _ := newUserInfoHandler(t)
	api.EXPECT().UserInfo(gomock.Any(), gomock.Any()).Return(&models.UserInfoResponse{
		Action:  models.UserInfoActionOK,
		Subject: "user-1",
		Token:   "at-1",
	}, nil)
	// No PrepareUserClaims, no lookups: claims list is empty.
	api.EXPECT().UserInfoIssue(gomock.Any(), &models.UserInfoIssueRequest{Token: "at-1"}).
		Return(&models.UserInfoIssueResponse{Action: models.UserInfoIssueActionJSON, ResponseContent: `{"sub":"user-1"}`}, nil)

	res, err := handler.Handle(context.Background(), "at-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUserInfoTransportFailure(t *testing.T) {
	handler, api, _ := newUserInfoHandler(t)
	api.EXPECT().UserInfo(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

	res, err := handler.Handle(context.Background(), "at-1")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestUserInfoUnknownIssueAction(t *testing.T) {
	handler, api, spi := newUserInfoHandler(t)
	api.EXPECT().UserInfo(gomock.Any(), gomock.Any()).Return(&models.UserInfoResponse{
		Action:  models.UserInfoActionOK,
		Subject: "user-1",
		Claims:  []string{"name"},
		Token:   "at-1",
	}, nil)
	spi.EXPECT().PrepareUserClaims(gomock.Any(), gomock.Any())
	spi.EXPECT().UserClaimValue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	api.EXPECT().UserInfoIssue(gomock.Any(), gomock.Any()).
		Return(&models.UserInfoIssueResponse{Action: "MYSTERY"}, nil)

	res, err := handler.Handle(context.Background(), "at-1")
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Body, "/auth/userinfo/issue")
}
