/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureservice_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/sigapi/internal/mock/signatureservice"
)

func do(t *testing.T, h http.Handler, method, path, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if auth {
		req.SetBasicAuth("user", "pass")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestService(t *testing.T) {
	svc := signatureservice.New("user", "pass")
	h := svc.Handler()

	rec := do(t, h, http.MethodPost, signatureservice.BasePath,
		`{"dataHash":{"algorithm":"SHA-256","value":"abc"},"metadata":{},"level":0}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	sig := gjson.Get(rec.Body.String(), "signature")
	require.True(t, sig.IsObject())
	assert.Equal(t, "abc", sig.Get("hash").String())

	rec = do(t, h, http.MethodPut, signatureservice.BasePath, `{"metadata":{},"signature":`+sig.Raw+`}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	id := gjson.Get(rec.Body.String(), "id").String()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, svc.Len())

	rec = do(t, h, http.MethodGet, signatureservice.BasePath+"/"+id, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, gjson.Get(rec.Body.String(), "id").String())
	assert.JSONEq(t, sig.Raw, gjson.Get(rec.Body.String(), "signature").Raw)
}

func TestService_Errors(t *testing.T) {
	h := signatureservice.New("user", "pass").Handler()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		auth   bool
		code   int
	}{
		{
			name:   "no credentials",
			method: http.MethodGet,
			path:   signatureservice.BasePath + "/x",
			code:   http.StatusUnauthorized,
		},
		{
			name:   "not found",
			method: http.MethodGet,
			path:   signatureservice.BasePath + "/x",
			auth:   true,
			code:   http.StatusNotFound,
		},
		{
			name:   "invalid create body",
			method: http.MethodPost,
			path:   signatureservice.BasePath,
			body:   `{`,
			auth:   true,
			code:   http.StatusBadRequest,
		},
		{
			name:   "missing data hash",
			method: http.MethodPost,
			path:   signatureservice.BasePath,
			body:   `{"metadata":{},"level":0}`,
			auth:   true,
			code:   http.StatusBadRequest,
		},
		{
			name:   "missing level",
			method: http.MethodPost,
			path:   signatureservice.BasePath,
			body:   `{"dataHash":{"algorithm":"SHA-256","value":"abc"},"metadata":{}}`,
			auth:   true,
			code:   http.StatusBadRequest,
		},
		{
			name:   "missing signature",
			method: http.MethodPut,
			path:   signatureservice.BasePath,
			body:   `{"metadata":{}}`,
			auth:   true,
			code:   http.StatusBadRequest,
		},
		{
			name:   "unknown signature",
			method: http.MethodPut,
			path:   signatureservice.BasePath,
			body:   `{"metadata":{},"signature":"S1"}`,
			auth:   true,
			code:   http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body, tt.auth)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
