package httptransport

import (
	"context"
	"net/http"
	"strings"

	"authlink/pkg/handler"
	"authlink/pkg/httputil"
	"authlink/pkg/models"
)

func (h *Handler) handleIntrospection(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	res, err := h.introspection.Handle(r.Context(), r.PostForm.Encode())
	h.write(w, r, res, err)
}

func (h *Handler) handleRevocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	credentials := httputil.ParseBasicCredentials(r.Header.Get("Authorization"))
	res, err := h.revocation.Handle(r.Context(), handler.RevocationRequestParams{
		Parameters:   r.PostForm.Encode(),
		ClientID:     credentials.ID,
		ClientSecret: credentials.Secret,
	})
	h.write(w, r, res, err)
}

func (h *Handler) handleConfiguration(w http.ResponseWriter, r *http.Request) {
	pretty := r.URL.Query().Get("pretty") == "true"
	res, err := h.configuration.Handle(r.Context(), pretty)
	h.write(w, r, res, err)
}

func (h *Handler) handleJWKS(w http.ResponseWriter, r *http.Request) {
	pretty := r.URL.Query().Get("pretty") == "true"
	res, err := h.jwks.Handle(r.Context(), pretty)
	h.write(w, r, res, err)
}

func (h *Handler) handleDeviceAuthorization(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	credentials := httputil.ParseBasicCredentials(r.Header.Get("Authorization"))
	res, err := h.deviceAuth.Handle(r.Context(), handler.DeviceAuthorizationParams{
		Parameters:   r.PostForm.Encode(),
		ClientID:     credentials.ID,
		ClientSecret: credentials.Secret,
	})
	h.write(w, r, res, err)
}

// handleDeviceVerification looks up the user code the end-user typed. VALID
// renders the approve/deny page; the other outcomes render plain demo pages
// here.
func (h *Handler) handleDeviceVerification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	userCode := r.PostForm.Get("userCode")

	verification := handler.NewDeviceVerificationHandler(h.api, deviceSpi{userCode: userCode}, h.logger)
	res, action, err := verification.Handle(r.Context(), userCode)
	if res != nil {
		h.write(w, r, res, err)
		return
	}

	switch action {
	case models.DeviceVerificationActionExpired:
		http.Error(w, "the user code has expired", http.StatusBadRequest)
	default:
		http.Error(w, "invalid user code", http.StatusBadRequest)
	}
}

// handleDeviceComplete reports the end-user's approve/deny decision for a
// device-flow authorization.
func (h *Handler) handleDeviceComplete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	user, loginErr := h.users.FindByCredentials(r.Context(),
		r.PostForm.Get("username"), r.PostForm.Get("password"))
	authorized := r.PostForm.Get("authorized") == "true" && loginErr == nil

	params := handler.DeviceCompleteParams{
		UserCode: r.PostForm.Get("userCode"),
		Result:   models.CompleteResultAccessDenied,
	}
	if authorized {
		params.Result = models.CompleteResultAuthorized
		params.Subject = user.Subject
		params.AuthTime = user.AuthenticatedAt
		params.Acr = user.Acr
		params.ClaimNames = strings.Fields(r.PostForm.Get("claimNames"))
	}

	complete := handler.NewDeviceCompleteHandler(h.api, completeSpi{user: user}, h.logger)
	action, err := complete.Handle(r.Context(), params)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "device complete failed", "error", err)
	}

	switch action {
	case models.DeviceCompleteActionSuccess:
		if authorized {
			_, _ = w.Write([]byte("authorization approved"))
		} else {
			_, _ = w.Write([]byte("authorization denied"))
		}
	case models.DeviceCompleteActionUserCodeExpired:
		http.Error(w, "the user code has expired", http.StatusBadRequest)
	case models.DeviceCompleteActionUserCodeNotExist:
		http.Error(w, "invalid user code", http.StatusBadRequest)
	case models.DeviceCompleteActionInvalidRequest:
		http.Error(w, "invalid request", http.StatusBadRequest)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

// handleBackchannelAuthentication serves the CIBA endpoint. The demo has no
// real authentication device, so an accepted request is completed in the
// background for the hinted user.
func (h *Handler) handleBackchannelAuthentication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	credentials := httputil.ParseBasicCredentials(r.Header.Get("Authorization"))
	s := backchannelSpi{complete: h.completeBackchannel}
	backchannel := handler.NewBackchannelAuthenticationRequestHandler(h.api, s, h.logger)

	res, err := backchannel.Handle(r.Context(), handler.BackchannelAuthenticationParams{
		Parameters:   r.PostForm.Encode(),
		ClientID:     credentials.ID,
		ClientSecret: credentials.Secret,
	})
	h.write(w, r, res, err)
}

// completeBackchannel finishes an accepted backchannel request: the hinted
// user approves, anything unresolvable is denied.
func (h *Handler) completeBackchannel(ctx context.Context, res *models.BackchannelAuthenticationResponse) {
	subject := res.Sub
	if subject == "" {
		subject = res.Hint
	}

	user, err := h.users.FindBySubject(ctx, subject)
	params := handler.BackchannelCompleteParams{
		Ticket: res.Ticket,
		Result: models.CompleteResultAccessDenied,
	}
	if err == nil {
		params.Result = models.CompleteResultAuthorized
		params.Subject = user.Subject
		params.AuthTime = user.AuthenticatedAt
		params.Acr = user.Acr
		params.ClaimNames = res.ClaimNames
	}

	complete := handler.NewBackchannelCompleteHandler(h.api, completeSpi{user: user}, h.logger, nil)
	if _, err := complete.Handle(ctx, params); err != nil {
		h.logger.ErrorContext(ctx, "backchannel complete failed",
			"ticket", res.Ticket,
			"error", err,
		)
	}
}

func (h *Handler) handlePushedAuthReq(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	credentials := httputil.ParseBasicCredentials(r.Header.Get("Authorization"))
	res, err := h.par.Handle(r.Context(), handler.PushedAuthReqParams{
		Parameters:   r.PostForm.Encode(),
		ClientID:     credentials.ID,
		ClientSecret: credentials.Secret,
	})
	h.write(w, r, res, err)
}
