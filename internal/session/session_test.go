package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adresur/adresur-go/internal/api"
	"github.com/adresur/adresur-go/internal/domain/order"
)

func newSession(t *testing.T, handler http.Handler) (*Session, *FileStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL)
	require.NoError(t, err)

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return New(client, store), store
}

func cookProfileHandler(t *testing.T, status int, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cooks/me/profile", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestResume_NoStoredToken(t *testing.T) {
	s, _ := newSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a token")
	}))

	require.NoError(t, s.Resume(context.Background()))
	assert.False(t, s.SignedIn())
}

func TestResume_ValidTokenCook(t *testing.T) {
	s, store := newSession(t, cookProfileHandler(t, http.StatusOK,
		`{"id":4,"user_id":9,"name":"Maria's Kitchen","delivery_radius":5}`))
	require.NoError(t, store.SaveToken("valid-token"))

	require.NoError(t, s.Resume(context.Background()))
	assert.True(t, s.SignedIn())
	require.NotNil(t, s.CookProfile())
	assert.Equal(t, "Maria's Kitchen", s.CookProfile().Name)
	assert.Equal(t, order.RoleCook, s.Role())
}

func TestResume_ValidTokenNotACook(t *testing.T) {
	s, store := newSession(t, cookProfileHandler(t, http.StatusNotFound,
		`{"detail":"Cook profile not found"}`))
	require.NoError(t, store.SaveToken("valid-token"))

	require.NoError(t, s.Resume(context.Background()))
	assert.True(t, s.SignedIn())
	assert.Nil(t, s.CookProfile())
	assert.Equal(t, order.RoleBuyer, s.Role())
}

func TestResume_RejectedTokenIsCleared(t *testing.T) {
	s, store := newSession(t, cookProfileHandler(t, http.StatusUnauthorized,
		`{"detail":"Could not validate credentials"}`))
	require.NoError(t, store.SaveToken("stale-token"))

	require.NoError(t, s.Resume(context.Background()))
	assert.False(t, s.SignedIn())

	stored, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected token must be removed from disk")
}

func TestResume_BackendDownKeepsToken(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	client, err := api.NewClient(srv.URL)
	require.NoError(t, err)
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("possibly-fine-token"))

	s := New(client, store)
	require.Error(t, s.Resume(context.Background()))

	stored, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "possibly-fine-token", stored,
		"network failure must not destroy a possibly valid session")
}

func TestLogin_PersistsToken(t *testing.T) {
	s, store := newSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"access_token":"fresh","token_type":"bearer"}`))
		case "/cooks/me/profile":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Cook profile not found"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	assert.True(t, s.SignedIn())

	stored, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "fresh", stored)
}

func TestLogout_ClearsEverything(t *testing.T) {
	s, store := newSession(t, cookProfileHandler(t, http.StatusOK,
		`{"id":4,"user_id":9,"name":"Maria's Kitchen","delivery_radius":5}`))
	require.NoError(t, store.SaveToken("valid-token"))
	require.NoError(t, s.Resume(context.Background()))
	require.True(t, s.SignedIn())

	require.NoError(t, s.Logout())
	assert.False(t, s.SignedIn())
	assert.Nil(t, s.CookProfile())
	assert.Equal(t, order.RoleBuyer, s.Role())

	stored, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tok, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.SaveToken("abc\n"))
	tok, err = store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok, "stored tokens are trimmed on load")

	require.NoError(t, store.ClearToken())
	require.NoError(t, store.ClearToken(), "clearing twice is fine")
}
