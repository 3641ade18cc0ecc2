package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yatube/config"

	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) config.Config {
	return config.Config{
		HTTP:        config.HTTPConfig{Port: "0", ShutdownTimeout: time.Second},
		StorageType: config.StorageMemory,
		JWT:         config.JWTConfig{Secret: "test", AccessTTL: time.Hour, RefreshTTL: 2 * time.Hour},
		Media:       config.MediaConfig{Type: config.MediaLocal, Root: t.TempDir(), URLPrefix: "/media/"},
	}
}

func TestNewApp_Memory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := NewApp(ctx, memoryConfig(t))
	require.NoError(t, err)
	defer a.Close()

	u, err := a.CreateUser(ctx, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := `{"username":"alice","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jwt/create/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "refresh")
}

func TestNewApp_BootstrapUsers(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig(t)
	cfg.Users = []config.UserCredentials{{Username: "alice", Password: "pw1"}, {Username: "bob", Password: "pw2"}}

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	for _, body := range []string{
		`{"username":"alice","password":"pw1"}`,
		`{"username":"bob","password":"pw2"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jwt/create/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Handler().ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, body)
	}

	cfg = memoryConfig(t)
	cfg.Users = []config.UserCredentials{{Username: "alice", Password: "pw1"}, {Username: "alice", Password: "pw2"}}
	_, err = NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	a, err := NewApp(context.Background(), memoryConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
