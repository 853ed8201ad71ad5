package httptransport

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"authlink/internal/users"
	"authlink/pkg/handler/spi"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

// The demo pages are deliberately plain; a real host application renders its
// own UI here.
var authorizationPage = template.Must(template.New("authorization").Parse(`<!DOCTYPE html>
<html>
<head><title>Authorization</title></head>
<body>
<h1>{{.ClientName}} is requesting access</h1>
<p>Scopes: {{.Scopes}}</p>
<form method="post" action="/authorize/decision">
  <input type="hidden" name="ticket" value="{{.Ticket}}">
  <input type="hidden" name="claimNames" value="{{.ClaimNames}}">
  <input type="hidden" name="claimLocales" value="{{.ClaimLocales}}">
  <label>Username <input type="text" name="username"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit" name="authorized" value="true">Approve</button>
  <button type="submit" name="authorized" value="false">Deny</button>
</form>
</body>
</html>
`))

var verificationPage = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head><title>Device Verification</title></head>
<body>
<h1>{{.ClientName}} is requesting access</h1>
<p>Scopes: {{.Scopes}}</p>
<form method="post" action="/device/complete">
  <input type="hidden" name="userCode" value="{{.UserCode}}">
  <input type="hidden" name="claimNames" value="{{.ClaimNames}}">
  <label>Username <input type="text" name="username"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit" name="authorized" value="true">Approve</button>
  <button type="submit" name="authorized" value="false">Deny</button>
</form>
</body>
</html>
`))

// claimValue resolves a claim against the demo user's claim map, which keys
// language-tagged values as "name#tag".
func claimValue(user users.User, claimName, languageTag string) any {
	key := claimName
	if languageTag != "" {
		key = claimName + "#" + languageTag
	}
	return user.Claims[key]
}

// authorizeSpi serves the authorization endpoint. The demo server keeps no
// login session, so prompt=none requests fail with NOT_LOGGED_IN and
// interactive requests go through the authorization page.
type authorizeSpi struct {
	spi.AuthorizationRequestAdapter
}

func (authorizeSpi) GenerateAuthorizationPage(res *models.AuthorizationResponse) (*httputil.Response, error) {
	clientName := "A client"
	if res.Client != nil && res.Client.ClientName != "" {
		clientName = res.Client.ClientName
	}

	var buf bytes.Buffer
	err := authorizationPage.Execute(&buf, map[string]string{
		"ClientName":   clientName,
		"Scopes":       strings.Join(res.Scopes, " "),
		"Ticket":       res.Ticket,
		"ClaimNames":   strings.Join(res.Claims, " "),
		"ClaimLocales": strings.Join(res.ClaimsLocales, " "),
	})
	if err != nil {
		return nil, err
	}
	return httputil.OKHTML(buf.String()), nil
}

// decisionSpi carries one submitted authorization decision. The end-user
// authenticates on the page itself, so credentials arrive with the decision.
type decisionSpi struct {
	spi.AuthorizationDecisionAdapter

	user       users.User
	loginOK    bool
	authorized bool
}

func newDecisionSpi(ctx context.Context, store users.Store, username, password string, authorized bool) *decisionSpi {
	user, err := store.FindByCredentials(ctx, username, password)
	return &decisionSpi{
		user:       user,
		loginOK:    err == nil,
		authorized: authorized,
	}
}

func (s *decisionSpi) ClientAuthorized() bool { return s.authorized }

func (s *decisionSpi) UserSubject() string {
	if !s.loginOK {
		return ""
	}
	return s.user.Subject
}

func (s *decisionSpi) UserAuthenticatedAt() int64 {
	if !s.loginOK {
		return 0
	}
	return s.user.AuthenticatedAt
}

func (s *decisionSpi) Acr() string { return s.user.Acr }

func (s *decisionSpi) UserClaimValue(_, claimName, languageTag string) any {
	if !s.loginOK {
		return nil
	}
	return claimValue(s.user, claimName, languageTag)
}

// tokenSpi verifies resource owner password credentials against the demo
// user store.
type tokenSpi struct {
	spi.TokenRequestAdapter

	store users.Store
}

func (s tokenSpi) AuthenticateUser(username, password string) string {
	user, err := s.store.FindByCredentials(context.Background(), username, password)
	if err != nil {
		return ""
	}
	return user.Subject
}

// userinfoSpi loads the subject's record once, then answers claim lookups
// from it. One instance serves one request.
type userinfoSpi struct {
	spi.UserInfoRequestAdapter

	store users.Store
	user  *users.User
}

func (s *userinfoSpi) PrepareUserClaims(subject string, _ []string) {
	user, err := s.store.FindBySubject(context.Background(), subject)
	if err != nil {
		return
	}
	s.user = &user
}

func (s *userinfoSpi) UserClaimValue(_, claimName, languageTag string) any {
	if s.user == nil {
		return nil
	}
	return claimValue(*s.user, claimName, languageTag)
}

// deviceSpi renders the device-flow verification page. The verification
// response does not echo the user code, so the instance carries the one the
// end-user typed.
type deviceSpi struct {
	spi.DeviceVerificationAdapter

	userCode string
}

func (s deviceSpi) GenerateVerificationPage(res *models.DeviceVerificationResponse) (*httputil.Response, error) {
	clientName := "A client"
	if res.ClientName != "" {
		clientName = res.ClientName
	}

	var buf bytes.Buffer
	err := verificationPage.Execute(&buf, map[string]string{
		"ClientName": clientName,
		"Scopes":     strings.Join(res.Scopes, " "),
		"UserCode":   s.userCode,
		"ClaimNames": strings.Join(res.Claims, " "),
	})
	if err != nil {
		return nil, err
	}
	return httputil.OKHTML(buf.String()), nil
}

// completeSpi supplies the issuance payload for device and backchannel
// complete calls from one authenticated demo user.
type completeSpi struct {
	spi.CompleteRequestAdapter

	user users.User
}

func (s completeSpi) UserClaimValue(_, claimName, languageTag string) any {
	return claimValue(s.user, claimName, languageTag)
}

// backchannelSpi authorizes backchannel requests without real end-user
// interaction: it resolves the login hint against the demo user store and
// completes the flow in the background.
type backchannelSpi struct {
	complete func(ctx context.Context, res *models.BackchannelAuthenticationResponse)
}

func (s backchannelSpi) StartUserAuthentication(res *models.BackchannelAuthenticationResponse) {
	go s.complete(context.Background(), res)
}
