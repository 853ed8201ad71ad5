package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authlink/pkg/claims"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

const challengeBackchannel = `Basic realm="backchannel/authentication"`

// notificationTimeout bounds the delivery of one CIBA client notification.
const notificationTimeout = 10 * time.Second

// BackchannelAuthenticationParams is the raw input of one CIBA backchannel
// authentication request.
type BackchannelAuthenticationParams struct {
	Parameters            string
	ClientID              string
	ClientSecret          string
	ClientCertificate     string
	ClientCertificatePath []string
}

// BackchannelAuthenticationRequestHandler implements the CIBA backchannel
// authentication endpoint. An accepted request triggers the SPI hook that
// starts the host's asynchronous end-user authentication, then acknowledges
// the client with auth_req_id via the issue endpoint.
type BackchannelAuthenticationRequestHandler struct {
	api    BackchannelAPI
	spi    spi.BackchannelAuthenticationSpi
	logger *slog.Logger
}

// NewBackchannelAuthenticationRequestHandler builds the handler. A nil
// logger falls back to slog.Default().
func NewBackchannelAuthenticationRequestHandler(api BackchannelAPI, s spi.BackchannelAuthenticationSpi, logger *slog.Logger) *BackchannelAuthenticationRequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackchannelAuthenticationRequestHandler{api: api, spi: s, logger: logger}
}

// Handle processes one backchannel authentication request.
func (h *BackchannelAuthenticationRequestHandler) Handle(ctx context.Context, params BackchannelAuthenticationParams) (*httputil.Response, error) {
	res, err := h.api.BackchannelAuthentication(ctx, &models.BackchannelAuthenticationRequest{
		Parameters:            params.Parameters,
		ClientID:              params.ClientID,
		ClientSecret:          params.ClientSecret,
		ClientCertificate:     params.ClientCertificate,
		ClientCertificatePath: params.ClientCertificatePath,
	})
	if err != nil {
		return apiFailure("/backchannel/authentication", err)
	}

	switch res.Action {
	case models.BackchannelAuthenticationActionInternalServerError:
		return httputil.InternalServerError(res.ResponseContent), nil
	case models.BackchannelAuthenticationActionBadRequest:
		return httputil.BadRequest(res.ResponseContent), nil
	case models.BackchannelAuthenticationActionUnauthorized:
		return httputil.Unauthorized(challengeBackchannel, res.ResponseContent), nil
	case models.BackchannelAuthenticationActionOK:
		return h.accept(ctx, res)
	default:
		return unknownAction("/backchannel/authentication", string(res.Action))
	}
}

func (h *BackchannelAuthenticationRequestHandler) accept(ctx context.Context, res *models.BackchannelAuthenticationResponse) (*httputil.Response, error) {
	h.spi.StartUserAuthentication(res)

	issued, err := h.api.BackchannelAuthenticationIssue(ctx, &models.BackchannelIssueRequest{Ticket: res.Ticket})
	if err != nil {
		return apiFailure("/backchannel/authentication/issue", err)
	}

	switch issued.Action {
	case models.BackchannelIssueActionInternalServerError:
		return httputil.InternalServerError(issued.ResponseContent), nil
	case models.BackchannelIssueActionInvalidTicket:
		// The ticket was already consumed; a fresh request is required.
		return httputil.InternalServerError(errorBody("authlink: backchannel ticket no longer valid")), nil
	case models.BackchannelIssueActionOK:
		return httputil.OKJSON(issued.ResponseContent), nil
	default:
		return unknownAction("/backchannel/authentication/issue", string(issued.Action))
	}
}

// BackchannelCompleteParams reports the asynchronous end-user authentication
// result for a pending backchannel request.
type BackchannelCompleteParams struct {
	Ticket string
	Result models.CompleteResult

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

// BackchannelCompleteHandler finishes a backchannel authentication once the
// host has authenticated the end-user (or failed to). In ping and push
// delivery modes the remote service prepares a notification this handler
// must deliver to the client's notification endpoint.
type BackchannelCompleteHandler struct {
	api        BackchannelAPI
	spi        spi.CompleteRequestSpi
	logger     *slog.Logger
	httpClient *http.Client
}

// NewBackchannelCompleteHandler builds the handler. A nil logger falls back
// to slog.Default(); a nil httpClient uses a plain client for notification
// delivery.
func NewBackchannelCompleteHandler(api BackchannelAPI, s spi.CompleteRequestSpi, logger *slog.Logger, httpClient *http.Client) *BackchannelCompleteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &BackchannelCompleteHandler{api: api, spi: s, logger: logger, httpClient: httpClient}
}

// Handle reports the result to the remote service and delivers the client
// notification when the remote service prepared one.
func (h *BackchannelCompleteHandler) Handle(ctx context.Context, params BackchannelCompleteParams) (models.BackchannelCompleteAction, error) {
	req := &models.BackchannelCompleteRequest{
		Ticket:           params.Ticket,
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

	res, err := h.api.BackchannelAuthenticationComplete(ctx, req)
	if err != nil {
		return models.BackchannelCompleteActionServerError,
			fmt.Errorf("handler: /backchannel/authentication/complete call failed: %w", err)
	}

	switch res.Action {
	case models.BackchannelCompleteActionNoAction:
		return res.Action, nil
	case models.BackchannelCompleteActionServerError:
		return res.Action, nil
	case models.BackchannelCompleteActionNotification:
		if err := h.notify(ctx, res); err != nil {
			return res.Action, err
		}
		return res.Action, nil
	default:
		_, err := unknownAction("/backchannel/authentication/complete", string(res.Action))
		return models.BackchannelCompleteActionServerError, err
	}
}

// notify POSTs the prepared notification to the client's registered
// notification endpoint, authenticated with the client notification token
// (CIBA Core section 10.2).
func (h *BackchannelCompleteHandler) notify(ctx context.Context, res *models.BackchannelCompleteResponse) error {
	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, res.ClientNotificationEndpoint, strings.NewReader(res.ResponseContent))
	if err != nil {
		return fmt.Errorf("handler: failed to build client notification: %w", err)
	}
	req.Header.Set("Content-Type", httputil.ContentTypeJSON)
	req.Header.Set("Authorization", "Bearer "+res.ClientNotificationToken)

	httpRes, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("handler: client notification delivery failed: %w", err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode < 200 || httpRes.StatusCode > 299 {
		h.logger.WarnContext(ctx, "client notification rejected",
			"endpoint", res.ClientNotificationEndpoint,
			"status", httpRes.StatusCode,
		)
	}
	return nil
}
