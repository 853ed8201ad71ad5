package httptransport

import (
	"net/http"
	"strings"

	"authlink/pkg/handler"
	"authlink/pkg/httputil"
)

// handleAuthorize forwards the raw authorization request to the SDK handler.
// GET carries the parameters in the query string, POST in the form body.
func (h *Handler) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	parameters := r.URL.RawQuery
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		parameters = r.PostForm.Encode()
	}

	res, err := h.authorization.Handle(r.Context(), parameters)
	h.write(w, r, res, err)
}

// handleAuthorizeDecision finishes an interactive authorization after the
// end-user submitted the authorization page. The page authenticates the user
// inline, so credentials travel with the decision.
func (h *Handler) handleAuthorizeDecision(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	s := newDecisionSpi(r.Context(), h.users,
		r.PostForm.Get("username"),
		r.PostForm.Get("password"),
		r.PostForm.Get("authorized") == "true",
	)
	decision := handler.NewAuthorizationDecisionHandler(h.api, s, h.logger)

	res, err := decision.Handle(r.Context(),
		r.PostForm.Get("ticket"),
		strings.Fields(r.PostForm.Get("claimNames")),
		strings.Fields(r.PostForm.Get("claimLocales")),
	)
	h.write(w, r, res, err)
}

// handleToken forwards a token request. Clients may authenticate with HTTP
// Basic; form-body credentials travel inside the parameters verbatim.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	credentials := httputil.ParseBasicCredentials(r.Header.Get("Authorization"))
	res, err := h.token.Handle(r.Context(), handler.TokenRequestParams{
		Parameters:   r.PostForm.Encode(),
		ClientID:     credentials.ID,
		ClientSecret: credentials.Secret,
	})
	h.write(w, r, res, err)
}

// handleUserInfo serves userinfo for the access token presented as a Bearer
// header or an access_token parameter (RFC 6750 sections 2.1-2.3).
func (h *Handler) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "invalid form body", http.StatusBadRequest)
				return
			}
			token = r.PostForm.Get("access_token")
		} else {
			token = r.URL.Query().Get("access_token")
		}
	}

	userinfo := handler.NewUserInfoRequestHandler(h.api, &userinfoSpi{store: h.users}, h.logger)
	res, err := userinfo.Handle(r.Context(), token)
	h.write(w, r, res, err)
}

// bearerToken extracts the token of a Bearer authorization header, or "".
func bearerToken(authorization string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
