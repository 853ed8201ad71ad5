package handler

import (
	"context"
	"fmt"
	"log/slog"

	"authlink/pkg/claims"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

const challengeDevice = `Basic realm="device"`

// DeviceAuthorizationParams is the raw input of one device authorization
// request (RFC 8628 section 3.1).
type DeviceAuthorizationParams struct {
	Parameters            string
	ClientID              string
	ClientSecret          string
	ClientCertificate     string
	ClientCertificatePath []string
}

// DeviceAuthorizationHandler implements the device authorization endpoint.
type DeviceAuthorizationHandler struct {
	api    DeviceAPI
	logger *slog.Logger
}

// NewDeviceAuthorizationHandler builds the handler. A nil logger falls back
// to slog.Default().
func NewDeviceAuthorizationHandler(api DeviceAPI, logger *slog.Logger) *DeviceAuthorizationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeviceAuthorizationHandler{api: api, logger: logger}
}

// Handle processes one device authorization request.
func (h *DeviceAuthorizationHandler) Handle(ctx context.Context, params DeviceAuthorizationParams) (*httputil.Response, error) {
	res, err := h.api.DeviceAuthorization(ctx, &models.DeviceAuthorizationRequest{
		Parameters:            params.Parameters,
		ClientID:              params.ClientID,
		ClientSecret:          params.ClientSecret,
		ClientCertificate:     params.ClientCertificate,
		ClientCertificatePath: params.ClientCertificatePath,
	})
	if err != nil {
		return apiFailure("/auth/device/authorization", err)
	}

	switch res.Action {
	case models.DeviceAuthorizationActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.DeviceAuthorizationActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.DeviceAuthorizationActionUnauthorized:
		return httputil.Unauthorized(challengeDevice, res.ResponseContent), nil
	case models.DeviceAuthorizationActionOK:
		return httputil.OKJSON(res.ResponseContent), nil
	default:
		return unknownAction("/auth/device/authorization", string(res.Action))
	}
}

// DeviceVerificationHandler looks up the pending authorization bound to a
// user code and delegates page rendering to the SPI. The non-VALID outcomes
// are returned as data for the host to render its own pages; only VALID
// produces a response here.
type DeviceVerificationHandler struct {
	api    DeviceAPI
	spi    spi.DeviceVerificationSpi
	logger *slog.Logger
}

// NewDeviceVerificationHandler builds the handler. A nil logger falls back
// to slog.Default().
func NewDeviceVerificationHandler(api DeviceAPI, s spi.DeviceVerificationSpi, logger *slog.Logger) *DeviceVerificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeviceVerificationHandler{api: api, spi: s, logger: logger}
}

// Handle verifies a user code. The returned action tells the host which page
// to show when no response descriptor is produced (EXPIRED, NOT_EXIST).
func (h *DeviceVerificationHandler) Handle(ctx context.Context, userCode string) (*httputil.Response, models.DeviceVerificationAction, error) {
	res, err := h.api.DeviceVerification(ctx, &models.DeviceVerificationRequest{UserCode: userCode})
	if err != nil {
		mapped, mappedErr := apiFailure("/auth/device/verification", err)
		return mapped, models.DeviceVerificationActionInternalServerError, mappedErr
	}

	switch res.Action {
	case models.DeviceVerificationActionInternalServerError:
		return httputil.InternalServerError(errorBody("authlink: device verification failed")), res.Action, nil
	case models.DeviceVerificationActionBadRequest, models.DeviceVerificationActionExpired, models.DeviceVerificationActionNotExist:
		// The host renders its own "wrong code" / "expired" pages.
		return nil, res.Action, nil
	case models.DeviceVerificationActionValid:
		page, err := h.spi.GenerateVerificationPage(res)
		if err != nil {
			h.logger.ErrorContext(ctx, "device verification page generation failed", "error", err)
			return httputil.InternalServerError(errorBody("authlink: device verification page generation failed")), res.Action, err
		}
		return page, res.Action, nil
	default:
		mapped, mappedErr := unknownAction("/auth/device/verification", string(res.Action))
		return mapped, res.Action, mappedErr
	}
}

// DeviceCompleteParams reports the end-user decision for a device-flow
// authorization.
type DeviceCompleteParams struct {
	UserCode string
	Result   models.CompleteResult

	// Issuance payload, used when Result is AUTHORIZED.
	Subject          string
	Sub              string
	AuthTime         int64
	Acr              string
	ClaimNames       []string
	ClaimLocales     []string
	ErrorDescription string
	ErrorURI         string
}

// DeviceCompleteHandler finishes a device-flow authorization after the
// end-user approved or denied it on the verification page. The returned
// action tells the host which completion page to render.
type DeviceCompleteHandler struct {
	api    DeviceAPI
	spi    spi.CompleteRequestSpi
	logger *slog.Logger
}

// NewDeviceCompleteHandler builds the handler. A nil logger falls back to
// slog.Default().
func NewDeviceCompleteHandler(api DeviceAPI, s spi.CompleteRequestSpi, logger *slog.Logger) *DeviceCompleteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeviceCompleteHandler{api: api, spi: s, logger: logger}
}

// Handle reports the decision to the remote service.
func (h *DeviceCompleteHandler) Handle(ctx context.Context, params DeviceCompleteParams) (models.DeviceCompleteAction, error) {
	req := &models.DeviceCompleteRequest{
		UserCode:         params.UserCode,
		Result:           params.Result,
		ErrorDescription: params.ErrorDescription,
		ErrorURI:         params.ErrorURI,
	}

	if params.Result == models.CompleteResultAuthorized {
		req.Subject = params.Subject
		req.Sub = params.Sub
		req.AuthTime = params.AuthTime
		req.Acr = params.Acr
		req.Claims = claims.NewCollector(h.spi).CollectJSON(params.Subject, params.ClaimNames, params.ClaimLocales)
		req.Properties = h.spi.Properties()
		req.Scopes = h.spi.Scopes()
	}

	res, err := h.api.DeviceComplete(ctx, req)
	if err != nil {
		return models.DeviceCompleteActionServerError,
			fmt.Errorf("handler: /auth/device/complete call failed: %w", err)
	}

	switch res.Action {
	case models.DeviceCompleteActionSuccess,
		models.DeviceCompleteActionInvalidRequest,
		models.DeviceCompleteActionUserCodeExpired,
		models.DeviceCompleteActionUserCodeNotExist,
		models.DeviceCompleteActionServerError:
		return res.Action, nil
	default:
		_, err := unknownAction("/auth/device/complete", string(res.Action))
		return models.DeviceCompleteActionServerError, err
	}
}
