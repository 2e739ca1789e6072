package webapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	tc := newTestCase(t)
	controller := NewAuthController(tc.accountService, testJWTSecret)

	body := `{"first_name":"Sara","last_name":"K","email":"sara@test.com","password":"secret123","city":"Algiers"}`
	rec := tc.doJSON(http.MethodPost, "/api/auth/register/freelancer", body, nil, controller.RegisterFreelancer)
	requireStatus(t, rec, http.StatusCreated)

	// Duplicate email is refused.
	rec = tc.doJSON(http.MethodPost, "/api/auth/register/freelancer", body, nil, controller.RegisterFreelancer)
	requireStatus(t, rec, http.StatusBadRequest)

	rec = tc.doJSON(http.MethodPost, "/api/auth/login",
		`{"email":"sara@test.com","password":"secret123"}`, nil, controller.Login)
	requireStatus(t, rec, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The issued token resolves back to the registered user.
	userID, err := apimiddleware.ParseToken(resp.Token, testJWTSecret)
	require.NoError(t, err)

	user, err := tc.stors.UserStor.GetUserByEmail("sara@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	tc := newTestCase(t)
	controller := NewAuthController(tc.accountService, testJWTSecret)

	body := `{"first_name":"Amine","last_name":"B","email":"amine@test.com","password":"secret123"}`
	rec := tc.doJSON(http.MethodPost, "/api/auth/register/client", body, nil, controller.RegisterClient)
	requireStatus(t, rec, http.StatusCreated)

	rec = tc.doJSON(http.MethodPost, "/api/auth/login",
		`{"email":"amine@test.com","password":"wrong"}`, nil, controller.Login)
	requireStatus(t, rec, http.StatusBadRequest)

	rec = tc.doJSON(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@test.com","password":"secret123"}`, nil, controller.Login)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegisterValidation(t *testing.T) {
	tc := newTestCase(t)
	controller := NewAuthController(tc.accountService, testJWTSecret)

	// Short password.
	rec := tc.doJSON(http.MethodPost, "/api/auth/register/client",
		`{"first_name":"A","last_name":"B","email":"a@test.com","password":"short"}`,
		nil, controller.RegisterClient)
	requireStatus(t, rec, http.StatusBadRequest)

	// Missing registration number for companies.
	rec = tc.doJSON(http.MethodPost, "/api/auth/register/company",
		`{"first_name":"A","last_name":"B","email":"co@test.com","password":"secret123"}`,
		nil, controller.RegisterCompany)
	requireStatus(t, rec, http.StatusBadRequest)
}
