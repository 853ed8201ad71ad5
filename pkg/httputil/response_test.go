package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponsesCarryNoStoreHeaders(t *testing.T) {
	tests := []struct {
		name       string
		res        *Response
		wantStatus int
	}{
		{name: "OKJSON", res: OKJSON(`{}`), wantStatus: http.StatusOK},
		{name: "OKJWT", res: OKJWT("a.b.c"), wantStatus: http.StatusOK},
		{name: "OKHTML", res: OKHTML("<html></html>"), wantStatus: http.StatusOK},
		{name: "Created", res: Created(`{}`), wantStatus: http.StatusCreated},
		{name: "NoContent", res: NoContent(), wantStatus: http.StatusNoContent},
		{name: "Location", res: Location("https://client.example.com/cb"), wantStatus: http.StatusFound},
		{name: "BadRequest", res: BadRequest(`{}`), wantStatus: http.StatusBadRequest},
		{name: "Forbidden", res: Forbidden(`{}`), wantStatus: http.StatusForbidden},
		{name: "PayloadTooLarge", res: PayloadTooLarge(`{}`), wantStatus: http.StatusRequestEntityTooLarge},
		{name: "InternalServerError", res: InternalServerError(`{}`), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.res.StatusCode)
			assert.Equal(t, "no-store", tt.res.Headers.Get("Cache-Control"))
			assert.Equal(t, "no-cache", tt.res.Headers.Get("Pragma"))
		})
	}
}

func TestContentTypes(t *testing.T) {
	assert.Equal(t, ContentTypeJSON, OKJSON(`{}`).Headers.Get("Content-Type"))
	assert.Equal(t, ContentTypeJWT, OKJWT("a.b.c").Headers.Get("Content-Type"))
	assert.Equal(t, ContentTypeHTML, OKHTML("<p/>").Headers.Get("Content-Type"))

	// No body, no content type.
	assert.Empty(t, NoContent().Headers.Get("Content-Type"))
	assert.Empty(t, Location("https://example.com").Headers.Get("Content-Type"))
}

func TestLocation(t *testing.T) {
	res := Location("https://client.example.com/cb?code=abc")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "https://client.example.com/cb?code=abc", res.Headers.Get("Location"))
	assert.Empty(t, res.Body)
}

func TestUnauthorizedChallenge(t *testing.T) {
	res := Unauthorized(`Basic realm="token"`, `{"error":"invalid_client"}`)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, `Basic realm="token"`, res.Headers.Get("WWW-Authenticate"))
	assert.Equal(t, `{"error":"invalid_client"}`, res.Body)

	// Empty challenge leaves the header out.
	assert.Empty(t, Unauthorized("", "").Headers.Get("WWW-Authenticate"))
}

func TestWWWAuthenticate(t *testing.T) {
	res := WWWAuthenticate(http.StatusBadRequest, `Bearer error="invalid_request"`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, `Bearer error="invalid_request"`, res.Headers.Get("WWW-Authenticate"))
	assert.Empty(t, res.Body)
}

func TestWriteTo(t *testing.T) {
	res := OKJSON(`{"ok":true}`)
	w := httptest.NewRecorder()
	res.WriteTo(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
