package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itchan-dev/yatube/shared/domain"
	internal_errors "github.com/itchan-dev/yatube/shared/errors"
	mw "github.com/itchan-dev/yatube/shared/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		registerErr    error
		expectedStatus int
	}{
		{name: "created", body: `{"username": "alice", "password": "password123"}`, expectedStatus: http.StatusCreated},
		{name: "short password", body: `{"username": "alice", "password": "short"}`, expectedStatus: http.StatusBadRequest},
		{name: "bad username", body: `{"username": "a b", "password": "password123"}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid json", body: `{ivalid json::}`, expectedStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"username": "alice", "password": "password123"}`, registerErr: internal_errors.Conflict("taken"), expectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Handler{auth: &MockAuthService{
				MockRegister: func(ctx context.Context, creds domain.Credentials, admin bool) (domain.UserId, error) {
					assert.False(t, admin)
					return 1, tc.registerErr
				},
			}}
			rr := httptest.NewRecorder()

			h.Signup(rr, httptest.NewRequest(http.MethodPost, "/auth/signup/", bytes.NewBufferString(tc.body)))

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	cfg := testConfig()

	t.Run("sets cookie", func(t *testing.T) {
		h := &Handler{cfg: cfg, auth: &MockAuthService{
			MockLogin: func(ctx context.Context, creds domain.Credentials) (string, error) {
				assert.Equal(t, "alice", creds.Username)
				return "signed-token", nil
			},
		}}
		rr := httptest.NewRecorder()

		h.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewBufferString(`{"username": "alice", "password": "password123"}`)))

		require.Equal(t, http.StatusOK, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, mw.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		h := &Handler{cfg: cfg, auth: &MockAuthService{
			MockLogin: func(ctx context.Context, creds domain.Credentials) (string, error) {
				return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
			},
		}}
		rr := httptest.NewRecorder()

		h.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewBufferString(`{"username": "alice", "password": "nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("missing fields", func(t *testing.T) {
		h := &Handler{cfg: cfg, auth: &MockAuthService{}}
		rr := httptest.NewRecorder()

		h.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewBufferString(`{"username": "alice"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	h := &Handler{cfg: testConfig()}
	rr := httptest.NewRecorder()

	h.Logout(rr, httptest.NewRequest(http.MethodPost, "/auth/logout/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, mw.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
