package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "health", &out))
	assert.Equal(t, "ok", out.Status)
}

func TestGetJSON_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"down"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/health", nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "down")
}

func TestGetJSON_TruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// anuncia más bytes de los que manda: el cliente ve un EOF inesperado
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte(`{"status":`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		Status string `json:"status"`
	}
	err = c.GetJSON(context.Background(), "/health", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read body")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("localhost:3001", time.Second)
	assert.Error(t, err)
}
