package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerCredential(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := bearerCredential(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Bearer ")
	_, ok = bearerCredential(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Basic abc")
	_, ok = bearerCredential(r)
	assert.False(t, ok)

	r.Header.Set("Authorization", "Bearer some-token")
	token, ok := bearerCredential(r)
	require.True(t, ok)
	assert.Equal(t, "some-token", token)
}

func TestCookieCredential(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := cookieCredential(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: "admin-auth", Value: "some-token"})
	token, ok := cookieCredential(r)
	require.True(t, ok)
	assert.Equal(t, "some-token", token)
}

// The transport is a deployment-wide choice: in cookie mode the bearer
// header must not be honored, and vice versa.
func TestCookieTransportGate(t *testing.T) {
	db := newTestStore(t)
	router := newTestRouter(t, db, map[string]string{"AUTH_TRANSPORT": "cookie"})

	token, err := db.TokenRepo().Mint()
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/projects", testProject(), withBearer(token))
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "bearer header must be ignored in cookie mode")

	rec = doJSON(t, router, http.MethodPost, "/api/projects", testProject(), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "admin-auth", Value: token})
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCORSHeadersOnAPIRoutes(t *testing.T) {
	db := newTestStore(t)
	router := newTestRouter(t, db, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
