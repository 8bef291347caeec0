package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthibanSekar/snaptravels/models"
)

func TestSignup(t *testing.T) {
	db, r := setupEnv(t)

	payload := gin.H{
		"email": "asha@example.com", "password": "secret123",
		"firstName": "Asha", "lastName": "Verma", "phone": "+91-9876543210",
	}

	w := doRequest(t, r, http.MethodPost, "/api/signup", payload, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	user := decodeJSON[models.User](t, w)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotContains(t, w.Body.String(), "secret123", "password never leaves the server")

	t.Run("duplicate email", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/signup", payload, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/signup", gin.H{
			"email": "b@example.com", "password": "abc", "firstName": "B", "lastName": "C",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	// The hash stored in the database must verify against the raw password.
	var stored models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestLoginAndRefresh(t *testing.T) {
	db, r := setupEnv(t)
	registerUser(t, db, "asha@example.com", "user")

	w := doRequest(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "asha@example.com", "password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeJSON[map[string]any](t, w)
	token, _ := resp["token"].(string)
	refresh, _ := resp["refresh_token"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refresh)

	t.Run("access token works", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/auth/user", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeJSON[models.User](t, w)
		assert.Equal(t, "asha@example.com", user.Email)
	})

	t.Run("refresh issues a new token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/refresh", gin.H{"refresh_token": refresh}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeJSON[map[string]any](t, w)
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/logout", gin.H{"refresh_token": refresh}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, r, http.MethodPost, "/api/refresh", gin.H{"refresh_token": refresh}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, r := setupEnv(t)
	registerUser(t, db, "asha@example.com", "user")

	w := doRequest(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "asha@example.com", "password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "nobody@example.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	_, r := setupEnv(t)

	w := doRequest(t, r, http.MethodGet, "/api/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/bookings", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
