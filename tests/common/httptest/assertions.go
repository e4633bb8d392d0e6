//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"stable-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx answers, decodes the
// body into target when one is given.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	if !assert.Equalf(t, status, rec.Code, "unexpected status, body: %s", rec.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(rec.Body.Bytes(), target), "decode body: %s", rec.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope's message
// contains msg. An empty msg only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) httperr.Body {
	t.Helper()

	assert.Equalf(t, status, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var resp httperr.Response
	assert.NoErrorf(t, json.Unmarshal(rec.Body.Bytes(), &resp), "decode error envelope: %s", rec.Body.String())
	if msg != "" {
		assert.Contains(t, resp.Error.Message, msg)
	}
	return resp.Error
}

func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for key, value := range want {
		assert.Equalf(t, value, rec.Header().Get(key), "header %s", key)
	}
}
