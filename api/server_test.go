package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kichu12348/kichu-space-backend/database"
)

const testOrigin = "https://www.kichu.space"

// openTestStore returns a live store over a fresh in-memory database with no
// schema created yet.
func openTestStore(t *testing.T) database.Database {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return database.New(db)
}

func newTestStore(t *testing.T) database.Database {
	t.Helper()

	d := openTestStore(t)
	_, err := d.Init()
	require.NoError(t, err)
	return d
}

func newTestRouter(t *testing.T, db database.Database, overrides map[string]string) http.Handler {
	t.Helper()

	c := map[string]string{
		"DB_TYPE":        "sqlite",
		"ALLOWED_ORIGIN": testOrigin,
		"AUTH_TRANSPORT": "bearer",
	}
	for k, v := range overrides {
		c[k] = v
	}
	return newRouter(db, withConfig(c))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
