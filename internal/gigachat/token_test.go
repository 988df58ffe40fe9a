package gigachat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Basic my-auth-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("RqUID"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "GIGACHAT_API_PERS", r.PostFormValue("scope"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","expires_at":1735689600000}`))
	}))
	t.Cleanup(srv.Close)

	ts := NewTokenSource(srv.URL, srv.Client())
	token, err := ts.Fetch(context.Background(), "my-auth-key", "GIGACHAT_API_PERS")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestFetchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	ts := NewTokenSource(srv.URL, srv.Client())
	_, err := ts.Fetch(context.Background(), "bad-key", "GIGACHAT_API_PERS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestFetchEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	ts := NewTokenSource(srv.URL, srv.Client())
	_, err := ts.Fetch(context.Background(), "key", "GIGACHAT_API_PERS")
	require.Error(t, err)
}
