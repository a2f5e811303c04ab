package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/require"
)

func registerPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":      email,
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"password":   "password",
	}
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", registerPayload("ada@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	require.Equal(t, "User created successfully", resp["message"])

	// Same email again, any role: always Conflict.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/register", registerPayload("ada@example.com"))
	require.Equal(t, http.StatusConflict, rec.Code)

	staff := registerPayload("ada@example.com")
	staff["role"] = "WAITER"
	staff["waiterPassphrase"] = testWaiterPassphrase
	rec = doJSON(t, r, http.MethodPost, "/api/auth/register", staff)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":      "not-an-email",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"password":   "password",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterStaffPassphrase(t *testing.T) {
	r := setupTest(t)

	cases := []struct {
		role       models.Role
		key        string
		passphrase string
		want       int
	}{
		{models.RoleWaiter, "waiterPassphrase", "", http.StatusForbidden},
		{models.RoleWaiter, "waiterPassphrase", "wrong", http.StatusForbidden},
		{models.RoleWaiter, "waiterPassphrase", testWaiterPassphrase, http.StatusCreated},
		{models.RoleManager, "managerPassphrase", "", http.StatusForbidden},
		{models.RoleManager, "managerPassphrase", "wrong", http.StatusForbidden},
		{models.RoleManager, "managerPassphrase", testManagerPassphrase, http.StatusCreated},
	}
	for i, tc := range cases {
		payload := registerPayload(string(tc.role) + string(rune('a'+i)) + "@example.com")
		payload["role"] = tc.role
		if tc.passphrase != "" {
			payload[tc.key] = tc.passphrase
		}
		rec := doJSON(t, r, http.MethodPost, "/api/auth/register", payload)
		require.Equal(t, tc.want, rec.Code, "role %s passphrase %q", tc.role, tc.passphrase)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	r := setupTest(t)

	payload := registerPayload("ada@example.com")
	payload["role"] = "ADMIN"
	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ada@example.com", models.RoleCustomer)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	require.Equal(t, "ada@example.com", resp["email"])
	require.Equal(t, "Test", resp["first_name"])
	require.Equal(t, "User", resp["last_name"])
	require.Equal(t, "CUSTOMER", resp["role"])
	require.NotContains(t, rec.Body.String(), "token")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ada@example.com", models.RoleCustomer)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "nope",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "password",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// No distinction between unknown email and wrong password.
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
