package httputil

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func basic(id, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(id+":"+secret))
}

func TestParseBasicCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BasicCredentials
	}{
		{name: "valid", input: basic("client-1", "s3cret"), want: BasicCredentials{ID: "client-1", Secret: "s3cret"}},
		{name: "empty secret", input: basic("client-1", ""), want: BasicCredentials{ID: "client-1"}},
		{name: "secret with colon", input: basic("client-1", "a:b"), want: BasicCredentials{ID: "client-1", Secret: "a:b"}},
		{name: "absent header", input: "", want: BasicCredentials{}},
		{name: "bearer scheme", input: "Bearer sometoken", want: BasicCredentials{}},
		{name: "bad base64", input: "Basic !!!", want: BasicCredentials{}},
		{name: "lowercase scheme", input: "basic " + base64.StdEncoding.EncodeToString([]byte("a:b")), want: BasicCredentials{ID: "a", Secret: "b"}},
		{name: "no colon in payload", input: "Basic " + base64.StdEncoding.EncodeToString([]byte("onlyid")), want: BasicCredentials{ID: "onlyid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBasicCredentials(tt.input))
		})
	}
}
