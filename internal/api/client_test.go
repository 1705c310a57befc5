package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin", body["username"])

		_ = json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: "tok-1",
			TokenType:   "bearer",
			ExpiresIn:   3600,
			Roles:       []string{"admin"},
			Permissions: []string{"graph:execute", "users:read"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	res, err := c.Login(context.Background(), "admin", "ChangeMe123!")
	require.NoError(t, err)
	require.Equal(t, "tok-1", res.AccessToken)
	require.Equal(t, []string{"admin"}, res.Roles)
	require.Len(t, res.Permissions, 2)
}

func TestServiceRejectionUsesDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	require.Equal(t, "Incorrect username or password", Reason(err))
}

func TestRejectionWithoutDetailFallsBackToStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Me(context.Background(), "tok")
	require.Error(t, err)
	require.Equal(t, "502 Bad Gateway", Reason(err))
}

func TestTransportFailureYieldsReason(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.CheckLive(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, Reason(err))
}

func TestExecuteGraphThreadHandling(t *testing.T) {
	t.Parallel()

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graph/execute", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		thread, _ := body["thread_id"].(string)
		seen = append(seen, thread)

		_ = json.NewEncoder(w).Encode(GraphResponse{
			Assistant:   "Mocked graph response",
			ThreadID:    "thread-1",
			Interrupted: false,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	res, err := c.ExecuteGraph(context.Background(), "tok-1", "Please plan a route.", "")
	require.NoError(t, err)
	require.Equal(t, "thread-1", res.ThreadID)
	require.Equal(t, "Mocked graph response", res.Assistant)

	_, err = c.ExecuteGraph(context.Background(), "tok-1", "And then?", "thread-1")
	require.NoError(t, err)

	// first call omits thread_id entirely, second pins the returned thread
	require.Equal(t, []string{"", "thread-1"}, seen)
}

func TestListUsersPagination(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/users", r.URL.Path)
		require.Equal(t, "0", r.URL.Query().Get("skip"))
		require.Equal(t, "200", r.URL.Query().Get("limit"))
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]User{{ID: 1, Username: "admin", IsActive: true}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	users, err := c.ListUsers(context.Background(), "tok-1", 0, 200)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "admin", users[0].Username)
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/health/live":
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "alive"})
		case "/health/ready":
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ready"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)

	live, err := c.CheckLive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alive", live.Status)

	ready, err := c.CheckReady(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ready", ready.Status)
}

func TestReasonFallsBackToUnknown(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Reason(nil))
	require.Equal(t, "boom", Reason(errEmpty("boom")))
	require.Equal(t, "Unknown error", Reason(errEmpty("")))
}

type errEmpty string

func (e errEmpty) Error() string { return string(e) }
