package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c, srv
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient("ftp://example.com")
	require.Error(t, err)

	_, err = NewClient("://nope")
	require.Error(t, err)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var auth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	c.SetToken("tok-123")
	_, err := c.ListCooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)

	c.ClearToken()
	_, err = c.ListCooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth, "no Authorization header after ClearToken")
}

func TestDo_MapsDetailErrorBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Menu item is not available"}`))
	}))

	_, err := c.ListMenuItems(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Menu item is not available", apiErr.Message)
}

func TestDo_NonDetailErrorBodyFallsBackToRaw(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := c.ListOrders(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestDo_TransportFailureIsStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.ListOrders(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, err.Error(), "network error")
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: 401}))
	assert.False(t, IsUnauthorized(&Error{Status: 404}))
	assert.True(t, IsNotFound(&Error{Status: 404}))
	assert.False(t, IsNotFound(context.Canceled))
}

func TestLogin_InstallsToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"access_token":"fresh-token","token_type":"bearer"}`))
	}))

	tok, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", tok.AccessToken)
	assert.Equal(t, "fresh-token", c.Token())
}

func TestLogin_FailureLeavesTokenUntouched(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	c.SetToken("old-token")

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.True(t, IsUnauthorized(err))
	assert.Equal(t, "old-token", c.Token())
}

func TestMenuItems_StringPricesDecode(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"cook_id":5,"title":"Dumplings","price":"12.50","is_available":true},
			{"id":2,"cook_id":5,"title":"Soup","price":7.25,"is_available":true}
		]`))
	}))

	items, err := c.ListMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "12.50", items[0].Price.String())
	assert.Equal(t, "7.25", items[1].Price.String())
}
