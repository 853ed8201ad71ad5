// Package httputil builds the HTTP response descriptors the endpoint
// handlers hand back to the hosting application. Construction is pure; the
// descriptors carry everything needed to write the response on any HTTP
// stack.
package httputil

import (
	"net/http"
)

// Content types used across the OAuth/OIDC endpoints.
const (
	ContentTypeJSON = "application/json;charset=UTF-8"
	ContentTypeHTML = "text/html;charset=UTF-8"
	ContentTypeJWT  = "application/jwt"
)

// Response is an HTTP response descriptor: status, headers and body. It is
// deliberately independent of net/http's server types so handlers can be
// embedded behind any framework.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       string
}

// WriteTo writes the descriptor to a standard response writer.
func (r *Response) WriteTo(w http.ResponseWriter) {
	for key, values := range r.Headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(r.StatusCode)
	if r.Body != "" {
		_, _ = w.Write([]byte(r.Body))
	}
}

// newResponse stamps the no-store cache headers every OAuth response carries.
func newResponse(status int, body, contentType string) *Response {
	headers := http.Header{}
	headers.Set("Cache-Control", "no-store")
	headers.Set("Pragma", "no-cache")
	if contentType != "" && body != "" {
		headers.Set("Content-Type", contentType)
	}
	return &Response{StatusCode: status, Headers: headers, Body: body}
}

// OKJSON builds a 200 response with a JSON body.
func OKJSON(body string) *Response {
	return newResponse(http.StatusOK, body, ContentTypeJSON)
}

// OKJWT builds a 200 response whose body is a serialized JWT.
func OKJWT(body string) *Response {
	return newResponse(http.StatusOK, body, ContentTypeJWT)
}

// OKHTML builds a 200 response with an HTML body, used for the OAuth form
// post response mode.
func OKHTML(body string) *Response {
	return newResponse(http.StatusOK, body, ContentTypeHTML)
}

// Created builds a 201 response with a JSON body.
func Created(body string) *Response {
	return newResponse(http.StatusCreated, body, ContentTypeJSON)
}

// NoContent builds an empty 204 response.
func NoContent() *Response {
	return newResponse(http.StatusNoContent, "", "")
}

// Location builds a 302 redirect to the given URL.
func Location(location string) *Response {
	res := newResponse(http.StatusFound, "", "")
	res.Headers.Set("Location", location)
	return res
}

// BadRequest builds a 400 response with a JSON body.
func BadRequest(body string) *Response {
	return newResponse(http.StatusBadRequest, body, ContentTypeJSON)
}

// Unauthorized builds a 401 response carrying a WWW-Authenticate challenge.
// The body, when present, is JSON.
func Unauthorized(challenge, body string) *Response {
	res := newResponse(http.StatusUnauthorized, body, ContentTypeJSON)
	if challenge != "" {
		res.Headers.Set("WWW-Authenticate", challenge)
	}
	return res
}

// Forbidden builds a 403 response with a JSON body.
func Forbidden(body string) *Response {
	return newResponse(http.StatusForbidden, body, ContentTypeJSON)
}

// PayloadTooLarge builds a 413 response with a JSON body.
func PayloadTooLarge(body string) *Response {
	return newResponse(http.StatusRequestEntityTooLarge, body, ContentTypeJSON)
}

// InternalServerError builds a 500 response with a JSON body.
func InternalServerError(body string) *Response {
	return newResponse(http.StatusInternalServerError, body, ContentTypeJSON)
}

// WWWAuthenticate builds a response of the given status whose only payload is
// a WWW-Authenticate challenge, as the userinfo and introspection endpoints
// require (RFC 6750 error delivery).
func WWWAuthenticate(status int, challenge string) *Response {
	res := newResponse(status, "", "")
	if challenge != "" {
		res.Headers.Set("WWW-Authenticate", challenge)
	}
	return res
}
