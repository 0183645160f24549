package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/models"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
		"role":     "Manager",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := dataMap(t, body)
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, "Manager", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	resp, body = doRequest(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "Manager", body["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, db := setupTestApp(t)

	payload := map[string]interface{}{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "secret123",
	}

	resp, _ := doRequest(t, app, http.MethodPost, "/api/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/register", "", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"email": "carol@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/register", "", map[string]interface{}{
		"name":     "Dave",
		"email":    "dave@example.com",
		"password": "secret123",
		"role":     "Admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginBadCredentials(t *testing.T) {
	app, db := setupTestApp(t)
	createUser(t, db, "Eve", "eve@example.com", models.RoleEmployee)

	// Wrong password and unknown account produce the same response
	resp, wrongPass := doRequest(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "eve@example.com",
		"password": "not-it",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, noUser := doRequest(t, app, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	assert.Equal(t, wrongPass["error"], noUser["error"])
}

func TestGetUsersFilterByRole(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)
	createUser(t, db, "Noa", "noa@example.com", models.RoleEmployee)

	resp, body := doRequest(t, app, http.MethodGet, "/api/users?role=Employee", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := dataList(t, body)
	require.Len(t, users, 2)
	for _, u := range users {
		entry := u.(map[string]interface{})
		assert.Equal(t, "Employee", entry["role"])
		assert.NotContains(t, entry, "password_hash")
	}
}

func TestGetUserNotFound(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/user/999", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
