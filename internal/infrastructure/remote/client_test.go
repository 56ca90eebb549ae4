package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/things", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ping", in["say"])

		_, _ = w.Write([]byte(`{"say":"pong"}`))
	}))
	defer srv.Close()

	c := NewClient("things", srv.URL+"/v2/", "secret", time.Second, nil)

	var out struct {
		Say string `json:"say"`
	}
	require.NoError(t, c.PostJSON(context.Background(), "/things", map[string]string{"say": "ping"}, &out))
	assert.Equal(t, "pong", out.Say)
}

func TestClient_PostJSON_DecodesErrorsOnce(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{"nested data message wins", http.StatusBadRequest, `{"message":"outer","data":{"message":"Email already has an open booking","code":"DUPLICATE"}}`, "Email already has an open booking", "DUPLICATE"},
		{"top level message", http.StatusUnprocessableEntity, `{"message":"budget_max must be positive","code":"VALIDATION"}`, "budget_max must be positive", "VALIDATION"},
		{"error string", http.StatusConflict, `{"error":"conflict"}`, "conflict", ""},
		{"error object ignored", http.StatusInternalServerError, `{"error":{"reason":"x"}}`, "", ""},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "", ""},
		{"empty body", http.StatusServiceUnavailable, ``, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient("bookings", srv.URL, "", time.Second, nil)
			err := c.PostJSON(context.Background(), "/x", struct{}{}, nil)

			var re *Error
			require.True(t, errors.As(err, &re))
			assert.Equal(t, "bookings", re.Service)
			assert.Equal(t, tc.status, re.StatusCode)
			assert.Equal(t, tc.wantMsg, re.Message)
			assert.Equal(t, tc.wantCode, re.Code)
			assert.Equal(t, tc.wantMsg, UserMessage(err))
		})
	}
}

func TestClient_PostJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient("pricing", url, "", time.Second, nil)
	err := c.PostJSON(context.Background(), "/quotes", struct{}{}, nil)

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.Zero(t, re.StatusCode)
	assert.NotNil(t, re.Err)
	assert.Contains(t, err.Error(), "pricing: request failed")
}

func TestClient_PostJSON_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient("pricing", srv.URL, "", 50*time.Millisecond, nil)
	err := c.PostJSON(context.Background(), "/quotes", struct{}{}, nil)
	require.Error(t, err)
	assert.Empty(t, UserMessage(err))
}

func TestClient_PostJSON_BadSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer srv.Close()

	c := NewClient("pricing", srv.URL, "", time.Second, nil)
	var out map[string]any
	err := c.PostJSON(context.Background(), "/quotes", struct{}{}, &out)

	var re *Error
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusOK, re.StatusCode)
}

func TestUserMessage_NonRemote(t *testing.T) {
	assert.Empty(t, UserMessage(errors.New("plain")))
	assert.Empty(t, UserMessage(nil))
}
