package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)

	w := serve(router, loginRequest(`{"password":"correct horse"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)

	// the cookie alone authenticates the session route
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie.Value})
	w = serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, domain.JournalUserID, session.User.ID)
	assert.Equal(t, domain.JournalUserName, session.User.Name)
	require.NotNil(t, session.ExpiresAt)
	assert.WithinDuration(t, resp.ExpiresAt, *session.ExpiresAt, time.Second)
}

func TestLogin_RejectsWrongAndUnconfiguredAlike(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)
	wrong := serve(router, loginRequest(`{"password":"battery staple"}`))

	cfg := testConfig()
	cfg.SecretPassword = ""
	unconfiguredRouter, _, err := newTestRouter(cfg, new(MockUploadService))
	require.NoError(t, err)
	unconfigured := serve(unconfiguredRouter, loginRequest(`{"password":"anything"}`))

	for _, w := range []*httptest.ResponseRecorder{wrong, unconfigured} {
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, apperrors.MsgInvalidCredentials, decodeMessage(t, w).Message)
		assert.Nil(t, sessionCookie(w))
	}
	assert.Equal(t, wrong.Body.String(), unconfigured.Body.String())
}

func TestLogin_BadBody(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)

	for _, body := range []string{`{}`, `not json`} {
		w := serve(router, loginRequest(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, apperrors.MsgInvalidRequestBody, decodeMessage(t, w).Message)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "2-M"
	router, _, err := newTestRouter(cfg, new(MockUploadService))
	require.NoError(t, err)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(router, loginRequest(`{"password":"battery staple"}`)).Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, apperrors.MsgSignedOut, decodeMessage(t, w).Message)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestSession_RequiresSession(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.MsgUnauthorized, decodeMessage(t, w).Message)
}

func TestHealthAndSwagger(t *testing.T) {
	router, _, err := newTestRouter(testConfig(), new(MockUploadService))
	require.NoError(t, err)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = serve(router, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/upload")

	cfg := testConfig()
	cfg.IsProduction = true
	prodRouter, _, err := newTestRouter(cfg, new(MockUploadService))
	require.NoError(t, err)
	w = serve(prodRouter, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS_AllowsFrontendWithCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.FrontendBaseURL = "http://localhost:3000"
	router, _, err := newTestRouter(cfg, new(MockUploadService))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(router, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "often"

	_, _, err := newTestRouter(cfg, new(MockUploadService))

	assert.Error(t, err)
}
