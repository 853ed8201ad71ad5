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
)

func newDiscoveryMock(t *testing.T) *mocks.MockDiscoveryAPI {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockDiscoveryAPI(ctrl)
}

func TestConfigurationServesDocument(t *testing.T) {
	api := newDiscoveryMock(t)
	api.EXPECT().ServiceConfiguration(gomock.Any(), false).
		Return(`{"issuer":"https://as.example.com"}`, nil)

	res, err := NewConfigurationRequestHandler(api, testLogger()).Handle(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"issuer":"https://as.example.com"}`, res.Body)
}

func TestConfigurationTransportFailure(t *testing.T) {
	api := newDiscoveryMock(t)
	api.EXPECT().ServiceConfiguration(gomock.Any(), false).Return("", errors.New("down"))

	res, err := NewConfigurationRequestHandler(api, testLogger()).Handle(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestJWKSServesPublicKeys(t *testing.T) {
	api := newDiscoveryMock(t)
	// Private keys must never be requested.
	api.EXPECT().ServiceJWKS(gomock.Any(), true, false).Return(`{"keys":[]}`, nil)

	res, err := NewJWKSRequestHandler(api, testLogger()).Handle(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"keys":[]}`, res.Body)
}

func TestJWKSEmptyDocument(t *testing.T) {
	api := newDiscoveryMock(t)
	api.EXPECT().ServiceJWKS(gomock.Any(), false, false).Return("", nil)

	res, err := NewJWKSRequestHandler(api, testLogger()).Handle(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Empty(t, res.Body)
}
