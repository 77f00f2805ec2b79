package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	hash, err := HashPassword("xpoint123")
	require.NoError(t, err)
	return Config{
		Username:     "admin",
		PasswordHash: hash,
		JWTSecret:    []byte("test-secret"),
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := NewService(testConfig(t))

	token, err := svc.Login(context.Background(), "admin", "xpoint123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NoError(t, svc.Verify(token))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(testConfig(t))
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "intruder", "xpoint123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	svc := NewService(testConfig(t))
	assert.Error(t, svc.Verify("not-a-token"))
}

func TestRequireSessionGuardsRoutes(t *testing.T) {
	handler := NewHandler(NewService(testConfig(t)))

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	router.Group(func(r chi.Router) {
		r.Use(handler.RequireSession)
		r.Get("/api/v1/guarded", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	// no cookie
	resp, err := http.Get(srv.URL + "/api/v1/guarded")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// login sets the session cookie
	loginResp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json",
		strings.NewReader(`{"username":"admin","password":"xpoint123"}`))
	require.NoError(t, err)
	loginResp.Body.Close()
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var session *http.Cookie
	for _, c := range loginResp.Cookies() {
		if c.Name == SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.True(t, session.HttpOnly)

	// cookie opens the guarded route
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/guarded", nil)
	require.NoError(t, err)
	req.AddCookie(session)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWithWrongPasswordSetsNoCookie(t *testing.T) {
	handler := NewHandler(NewService(testConfig(t)))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}
