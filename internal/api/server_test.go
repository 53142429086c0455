package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-admin-api/internal/api/handler"
	"github.com/vfg2006/clinic-admin-api/internal/config"
	"github.com/vfg2006/clinic-admin-api/internal/domain"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-admin-api/internal/usecases/menuing"
	"github.com/vfg2006/clinic-admin-api/pkg/log"
	"github.com/vfg2006/clinic-admin-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.Server{Host: "127.0.0.1", Port: "0"},
		SecretKey: "segredo-teste",
		Auth:      config.Auth{TokenTTL: time.Hour},
		Cors:      config.Cors{AllowedOrigins: []string{"http://localhost:4200"}},
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	srv, err := New(testConfig(), nil, nil)
	assert.Nil(t, srv)
	assert.Error(t, err)
}

func TestServer_FullChain(t *testing.T) {
	cfg := testConfig()
	auth := authenticating.NewService(cfg)
	view, err := menuing.NewAdminMenuView(handler.NewHTTPNavigator())
	require.NoError(t, err)

	srv, err := New(cfg, view, auth)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	token, err := auth.IssueToken(&domain.Claims{UserID: 9, UserActive: true, UserRoleID: middleware.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, handler.AdminMenuBackPath, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/admin/dashboard")
	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	view, err := menuing.NewAdminMenuView(handler.NewHTTPNavigator())
	require.NoError(t, err)

	srv, err := New(cfg, view, authenticating.NewService(cfg))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou após o cancelamento do contexto")
	}
}
