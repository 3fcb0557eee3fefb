package restapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tenduke/go-sso-client/config"
	"github.com/tenduke/go-sso-client/restapi"
	"github.com/tenduke/go-sso-client/session"
	"github.com/tenduke/go-sso-client/session/keyring"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"u1","givenName":"Jane","familyName":"Doe","email":"jane.doe@example.com"}`))
	})
	mux.HandleFunc("/api/idp/v1/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"u1","email":"jane.doe@example.com","displayName":"Jane Doe"}]`))
	})
	mux.HandleFunc("/api/idp/v1/groups", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"g1","name":"Admins","ref_Organization_id":"o1","userIds":["u1"]}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseURL string) (*restapi.Client, *session.Store) {
	t.Helper()

	store, err := session.NewStore(keyring.NewMemory(), keyring.NewMemoryPointer())
	require.NoError(t, err)

	cfg := config.Static{
		IdPBaseURL:     baseURL + "/",
		SSOClientID:    "c1",
		SSORedirectURL: "app://cb",
	}
	return restapi.NewClient(cfg, store), store
}

func TestClient_UserInfo(t *testing.T) {
	server := newTestServer(t)
	client, store := newTestClient(t, server.URL)
	require.NoError(t, store.Store("u1", "tok1"))

	info, err := client.UserInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", info.Sub)
	require.Equal(t, "jane.doe@example.com", info.Email)
}

func TestClient_Users(t *testing.T) {
	server := newTestServer(t)
	client, store := newTestClient(t, server.URL)
	require.NoError(t, store.Store("u1", "tok1"))

	users, err := client.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Jane Doe", users[0].DisplayName)
}

func TestClient_Groups(t *testing.T) {
	server := newTestServer(t)
	client, store := newTestClient(t, server.URL)
	require.NoError(t, store.Store("u1", "tok1"))

	groups, err := client.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "o1", groups[0].OrganizationID)
	require.Equal(t, []string{"u1"}, groups[0].UserIDs)
}

func TestClient_NoSession(t *testing.T) {
	server := newTestServer(t)
	client, _ := newTestClient(t, server.URL)

	_, err := client.UserInfo(context.Background())
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestClient_APIError(t *testing.T) {
	server := newTestServer(t)
	client, store := newTestClient(t, server.URL)
	require.NoError(t, store.Store("u1", "wrong-token"))

	_, err := client.UserInfo(context.Background())
	require.Error(t, err)

	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
