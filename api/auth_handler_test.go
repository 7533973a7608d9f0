package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintToken(t *testing.T) {
	db := newTestStore(t)
	router := newTestRouter(t, db, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/user-token", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	token := body["token"]
	require.Len(t, token, 32)

	valid, err := db.TokenRepo().Check(token)
	require.NoError(t, err)
	assert.True(t, valid, "a minted token must be stored")
}

func TestIsValidEndpoint(t *testing.T) {
	db := newTestStore(t)
	router := newTestRouter(t, db, nil)

	token, err := db.TokenRepo().Mint()
	require.NoError(t, err)

	// Token values can contain URL-significant symbols.
	path := "/api/auth/is-valid/" + url.PathEscape(token)
	rec := doJSON(t, router, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]bool](t, rec)
	assert.True(t, body["valid"])

	rec = doJSON(t, router, http.MethodGet, "/api/auth/is-valid/bogus", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body = decodeBody[map[string]bool](t, rec)
	assert.False(t, body["valid"])
}
