package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "valid object", body: `{"name":"shirt"}`, want: "shirt"},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed json", body: `{"name":`, wantErr: true},
		{name: "trailing object", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var got payload
			err := DecodeBody(req, &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Name)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	type input struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(input{Email: "nope"})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rec, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var res ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "email", res.Fields["Email"])
}

func TestWriteErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteErrorDetails(rec, "timeout", map[string]any{"job_key": "abc"}, http.StatusGatewayTimeout))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"timeout","details":{"job_key":"abc"}}`, rec.Body.String())
}
