package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/reisermn/virtual-island/internal/database"
	"github.com/reisermn/virtual-island/internal/models"
	"github.com/reisermn/virtual-island/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires the router against an in-memory sqlite database and a
// miniredis-backed session store, the same shape as production.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Game{}, &models.Role{}, &models.Tribal{}))
	database.DB = db

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	session.Sessions = session.NewWithClient(client, time.Hour)

	return NewRouter()
}

func postForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerForm returns a valid registration form; overrides replace fields.
func registerForm(overrides map[string]string) url.Values {
	form := url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@example.com"},
		"password":   {"password123"},
		"confirm":    {"password123"},
		"game_name":  {"Borneo"},
		"tribe_name": {"Tagi"},
	}
	for key, value := range overrides {
		form.Set(key, value)
	}
	return form
}

func mustRegister(t *testing.T, router *gin.Engine, overrides map[string]string) {
	t.Helper()
	w := postForm(router, "/register", registerForm(overrides))
	require.Equal(t, http.StatusSeeOther, w.Code, "registration failed: %s", w.Body.String())
	require.Equal(t, "/", w.Header().Get("Location"))
}

// sessionCookie extracts the session cookie set by a login response.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func loginAs(t *testing.T, router *gin.Engine, username, pass string) *http.Cookie {
	t.Helper()
	w := postForm(router, "/", url.Values{"username": {username}, "password": {pass}})
	require.Equal(t, http.StatusSeeOther, w.Code, "login failed: %s", w.Body.String())
	return sessionCookie(t, w)
}
