package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"authlink/pkg/api/metrics"
	"authlink/pkg/models"
)

// Remote endpoint paths.
const (
	pathAuthorization         = "/api/auth/authorization"
	pathAuthorizationIssue    = "/api/auth/authorization/issue"
	pathAuthorizationFail     = "/api/auth/authorization/fail"
	pathToken                 = "/api/auth/token"
	pathTokenIssue            = "/api/auth/token/issue"
	pathTokenFail             = "/api/auth/token/fail"
	pathTokenGetList          = "/api/auth/token/get/list"
	pathUserInfo              = "/api/auth/userinfo"
	pathUserInfoIssue         = "/api/auth/userinfo/issue"
	pathIntrospection         = "/api/auth/introspection"
	pathIntrospectionStandard = "/api/auth/introspection/standard"
	pathRevocation            = "/api/auth/revocation"
	pathServiceConfiguration  = "/api/service/configuration"
	pathServiceJWKSGet        = "/api/service/jwks/get"
	pathDeviceAuthorization   = "/api/auth/device/authorization"
	pathDeviceVerification    = "/api/auth/device/verification"
	pathDeviceComplete        = "/api/auth/device/complete"
	pathBackchannel           = "/api/backchannel/authentication"
	pathBackchannelIssue      = "/api/backchannel/authentication/issue"
	pathBackchannelFail       = "/api/backchannel/authentication/fail"
	pathBackchannelComplete   = "/api/backchannel/authentication/complete"
	pathPushedAuthReq         = "/api/pushed_auth_req"
	pathServiceCreate         = "/api/service/create"
	pathServiceGet            = "/api/service/get"
	pathServiceGetList        = "/api/service/get/list"
	pathServiceUpdate         = "/api/service/update"
	pathServiceDelete         = "/api/service/delete"
	pathClientCreate          = "/api/client/create"
	pathClientGet             = "/api/client/get"
	pathClientGetList         = "/api/client/get/list"
	pathClientUpdate          = "/api/client/update"
	pathClientDelete          = "/api/client/delete"
)

// DefaultTimeout bounds a single remote call when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

var tracer = otel.Tracer("authlink/pkg/api")

// Config holds everything the default client needs to reach the remote API.
type Config struct {
	// BaseURL is the root of the remote API, e.g. "https://api.authlink.example".
	BaseURL string

	// Service credentials authenticate end-user-facing flows.
	ServiceAPIKey    string
	ServiceAPISecret string

	// Service-owner credentials authenticate service/client management.
	ServiceOwnerAPIKey    string
	ServiceOwnerAPISecret string

	// Timeout bounds each remote call. Zero means DefaultTimeout. Reaching
	// it cancels the in-flight request; the call fails with *Error and is
	// never retried here.
	Timeout time.Duration

	// HTTPClient overrides the transport; nil means a plain &http.Client{}.
	HTTPClient *http.Client

	// Logger for call-level diagnostics; nil means slog.Default().
	Logger *slog.Logger

	// Metrics, when set, records per-endpoint call counts and latencies.
	Metrics *metrics.Metrics
}

type credentials struct {
	key    string
	secret string
}

// HTTPClient is the default Client implementation: JSON over HTTPS with HTTP
// Basic authentication.
type HTTPClient struct {
	baseURL      string
	service      credentials
	serviceOwner credentials
	timeout      time.Duration
	httpClient   *http.Client
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds the default client from cfg.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPClient{
		baseURL:      cfg.BaseURL,
		service:      credentials{key: cfg.ServiceAPIKey, secret: cfg.ServiceAPISecret},
		serviceOwner: credentials{key: cfg.ServiceOwnerAPIKey, secret: cfg.ServiceOwnerAPISecret},
		timeout:      timeout,
		httpClient:   httpClient,
		logger:       logger,
		metrics:      cfg.Metrics,
	}, nil
}

// call performs one HTTP exchange and returns the raw response body. All
// failure modes collapse into *Error; a 2xx status with a readable body is
// the only success path.
func (c *HTTPClient) call(ctx context.Context, cred credentials, method, path string, query url.Values, body any) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, path)
	defer span.End()
	span.SetAttributes(attribute.String("http.method", method))

	start := time.Now()
	raw, status, err := c.exchange(ctx, cred, method, path, query, body)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.ErrorContext(ctx, "remote API call failed",
			"endpoint", path,
			"error", err,
		)
	}
	c.metrics.Observe(path, outcome, time.Since(start))
	return raw, status, err
}

func (c *HTTPClient) exchange(ctx context.Context, cred credentials, method, path string, query url.Values, body any) ([]byte, int, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, 0, &Error{Message: fmt.Sprintf("failed to encode request for %s", path), Cause: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, &Error{Message: fmt.Sprintf("failed to build request for %s", path), Cause: err}
	}
	req.SetBasicAuth(cred.key, cred.secret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &Error{Message: fmt.Sprintf("request to %s failed", path), Cause: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, &Error{
			Message:    fmt.Sprintf("failed to read response from %s", path),
			StatusCode: res.StatusCode,
			StatusText: http.StatusText(res.StatusCode),
			Headers:    res.Header,
			Cause:      err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, res.StatusCode, &Error{
			Message:    fmt.Sprintf("remote API returned an error from %s", path),
			StatusCode: res.StatusCode,
			StatusText: http.StatusText(res.StatusCode),
			Body:       string(raw),
			Headers:    res.Header,
		}
	}

	return raw, res.StatusCode, nil
}

// postJSON sends a JSON request and decodes a JSON response into out.
func (c *HTTPClient) postJSON(ctx context.Context, cred credentials, path string, body, out any) error {
	raw, status, err := c.call(ctx, cred, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Message:    fmt.Sprintf("failed to decode response from %s", path),
			StatusCode: status,
			StatusText: http.StatusText(status),
			Body:       string(raw),
			Cause:      err,
		}
	}
	return nil
}

// getJSON fetches a JSON document and decodes it into out.
func (c *HTTPClient) getJSON(ctx context.Context, cred credentials, path string, query url.Values, out any) error {
	raw, status, err := c.call(ctx, cred, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Message:    fmt.Sprintf("failed to decode response from %s", path),
			StatusCode: status,
			StatusText: http.StatusText(status),
			Body:       string(raw),
			Cause:      err,
		}
	}
	return nil
}

// getRaw fetches a document and returns the body verbatim.
func (c *HTTPClient) getRaw(ctx context.Context, cred credentials, path string, query url.Values) (string, error) {
	raw, _, err := c.call(ctx, cred, http.MethodGet, path, query, nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func boolParam(v bool) string {
	return strconv.FormatBool(v)
}

func rangeQuery(start, end *int) url.Values {
	query := url.Values{}
	if start != nil {
		query.Set("start", strconv.Itoa(*start))
	}
	if end != nil {
		query.Set("end", strconv.Itoa(*end))
	}
	return query
}

func (c *HTTPClient) Authorization(ctx context.Context, req *models.AuthorizationRequest) (*models.AuthorizationResponse, error) {
	var res models.AuthorizationResponse
	if err := c.postJSON(ctx, c.service, pathAuthorization, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AuthorizationIssue(ctx context.Context, req *models.AuthorizationIssueRequest) (*models.AuthorizationIssueResponse, error) {
	var res models.AuthorizationIssueResponse
	if err := c.postJSON(ctx, c.service, pathAuthorizationIssue, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AuthorizationFail(ctx context.Context, req *models.AuthorizationFailRequest) (*models.AuthorizationFailResponse, error) {
	var res models.AuthorizationFailResponse
	if err := c.postJSON(ctx, c.service, pathAuthorizationFail, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Token(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error) {
	var res models.TokenResponse
	if err := c.postJSON(ctx, c.service, pathToken, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) TokenIssue(ctx context.Context, req *models.TokenIssueRequest) (*models.TokenIssueResponse, error) {
	var res models.TokenIssueResponse
	if err := c.postJSON(ctx, c.service, pathTokenIssue, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) TokenFail(ctx context.Context, req *models.TokenFailRequest) (*models.TokenFailResponse, error) {
	var res models.TokenFailResponse
	if err := c.postJSON(ctx, c.service, pathTokenFail, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UserInfo(ctx context.Context, req *models.UserInfoRequest) (*models.UserInfoResponse, error) {
	var res models.UserInfoResponse
	if err := c.postJSON(ctx, c.service, pathUserInfo, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UserInfoIssue(ctx context.Context, req *models.UserInfoIssueRequest) (*models.UserInfoIssueResponse, error) {
	var res models.UserInfoIssueResponse
	if err := c.postJSON(ctx, c.service, pathUserInfoIssue, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Introspection(ctx context.Context, req *models.IntrospectionRequest) (*models.IntrospectionResponse, error) {
	var res models.IntrospectionResponse
	if err := c.postJSON(ctx, c.service, pathIntrospection, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) StandardIntrospection(ctx context.Context, req *models.StandardIntrospectionRequest) (*models.StandardIntrospectionResponse, error) {
	var res models.StandardIntrospectionResponse
	if err := c.postJSON(ctx, c.service, pathIntrospectionStandard, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Revocation(ctx context.Context, req *models.RevocationRequest) (*models.RevocationResponse, error) {
	var res models.RevocationResponse
	if err := c.postJSON(ctx, c.service, pathRevocation, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ServiceConfiguration(ctx context.Context, pretty bool) (string, error) {
	query := url.Values{"pretty": []string{boolParam(pretty)}}
	return c.getRaw(ctx, c.service, pathServiceConfiguration, query)
}

func (c *HTTPClient) ServiceJWKS(ctx context.Context, pretty, includePrivateKeys bool) (string, error) {
	query := url.Values{
		"pretty":             []string{boolParam(pretty)},
		"includePrivateKeys": []string{boolParam(includePrivateKeys)},
	}
	return c.getRaw(ctx, c.serviceOwner, pathServiceJWKSGet, query)
}

func (c *HTTPClient) DeviceAuthorization(ctx context.Context, req *models.DeviceAuthorizationRequest) (*models.DeviceAuthorizationResponse, error) {
	var res models.DeviceAuthorizationResponse
	if err := c.postJSON(ctx, c.service, pathDeviceAuthorization, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeviceVerification(ctx context.Context, req *models.DeviceVerificationRequest) (*models.DeviceVerificationResponse, error) {
	var res models.DeviceVerificationResponse
	if err := c.postJSON(ctx, c.service, pathDeviceVerification, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeviceComplete(ctx context.Context, req *models.DeviceCompleteRequest) (*models.DeviceCompleteResponse, error) {
	var res models.DeviceCompleteResponse
	if err := c.postJSON(ctx, c.service, pathDeviceComplete, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BackchannelAuthentication(ctx context.Context, req *models.BackchannelAuthenticationRequest) (*models.BackchannelAuthenticationResponse, error) {
	var res models.BackchannelAuthenticationResponse
	if err := c.postJSON(ctx, c.service, pathBackchannel, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BackchannelAuthenticationIssue(ctx context.Context, req *models.BackchannelIssueRequest) (*models.BackchannelIssueResponse, error) {
	var res models.BackchannelIssueResponse
	if err := c.postJSON(ctx, c.service, pathBackchannelIssue, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BackchannelAuthenticationFail(ctx context.Context, req *models.BackchannelFailRequest) (*models.BackchannelFailResponse, error) {
	var res models.BackchannelFailResponse
	if err := c.postJSON(ctx, c.service, pathBackchannelFail, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BackchannelAuthenticationComplete(ctx context.Context, req *models.BackchannelCompleteRequest) (*models.BackchannelCompleteResponse, error) {
	var res models.BackchannelCompleteResponse
	if err := c.postJSON(ctx, c.service, pathBackchannelComplete, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) PushedAuthReq(ctx context.Context, req *models.PushedAuthReqRequest) (*models.PushedAuthReqResponse, error) {
	var res models.PushedAuthReqResponse
	if err := c.postJSON(ctx, c.service, pathPushedAuthReq, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	var res models.Service
	if err := c.postJSON(ctx, c.serviceOwner, pathServiceCreate, service, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetService(ctx context.Context, apiKey int64) (*models.Service, error) {
	var res models.Service
	path := fmt.Sprintf("%s/%d", pathServiceGet, apiKey)
	if err := c.getJSON(ctx, c.serviceOwner, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetServiceList(ctx context.Context, req *models.ServiceListRequest) (*models.ServiceListResponse, error) {
	var query url.Values
	if req != nil {
		query = rangeQuery(req.Start, req.End)
	}
	var res models.ServiceListResponse
	if err := c.getJSON(ctx, c.serviceOwner, pathServiceGetList, query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	var res models.Service
	path := fmt.Sprintf("%s/%d", pathServiceUpdate, service.APIKey)
	if err := c.postJSON(ctx, c.serviceOwner, path, service, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteService(ctx context.Context, apiKey int64) error {
	path := fmt.Sprintf("%s/%d", pathServiceDelete, apiKey)
	_, _, err := c.call(ctx, c.serviceOwner, http.MethodDelete, path, nil, nil)
	return err
}

func (c *HTTPClient) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	var res models.Client
	if err := c.postJSON(ctx, c.serviceOwner, pathClientCreate, client, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetClient(ctx context.Context, clientID int64) (*models.Client, error) {
	var res models.Client
	path := fmt.Sprintf("%s/%d", pathClientGet, clientID)
	if err := c.getJSON(ctx, c.serviceOwner, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetClientList(ctx context.Context, req *models.ClientListRequest) (*models.ClientListResponse, error) {
	query := url.Values{}
	if req != nil {
		query = rangeQuery(req.Start, req.End)
		if req.Developer != "" {
			query.Set("developer", req.Developer)
		}
	}
	var res models.ClientListResponse
	if err := c.getJSON(ctx, c.serviceOwner, pathClientGetList, query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	var res models.Client
	path := fmt.Sprintf("%s/%d", pathClientUpdate, client.ClientID)
	if err := c.postJSON(ctx, c.serviceOwner, path, client, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) DeleteClient(ctx context.Context, clientID int64) error {
	path := fmt.Sprintf("%s/%d", pathClientDelete, clientID)
	_, _, err := c.call(ctx, c.serviceOwner, http.MethodDelete, path, nil, nil)
	return err
}

func (c *HTTPClient) GetTokenList(ctx context.Context, req *models.TokenListRequest) (*models.TokenListResponse, error) {
	query := url.Values{}
	if req != nil {
		query = rangeQuery(req.Start, req.End)
		if req.Subject != "" {
			query.Set("subject", req.Subject)
		}
		if req.ClientIdentifier != "" {
			query.Set("clientIdentifier", req.ClientIdentifier)
		}
	}
	var res models.TokenListResponse
	if err := c.getJSON(ctx, c.service, pathTokenGetList, query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
