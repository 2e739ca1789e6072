package apimiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func runMiddleware(t *testing.T, userStor stor.UserStor, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := TokenAuth(TokenAuthConfig{
		Secret:      testSecret,
		GetUserByID: userStor.GetUserByID,
	})(func(c echo.Context) error {
		user := GetUser(c)
		require.NotNil(t, user)
		return c.String(http.StatusOK, user.Email)
	})

	return rec, handler(c)
}

func TestTokenAuthResolvesUser(t *testing.T) {
	userStor := stor.NewInMemoryUserStor(nil)
	user, err := userStor.CreateUser(&smodel.User{Email: "sara@test.com"})
	require.NoError(t, err)

	token, err := GenerateToken(user.ID, testSecret, time.Hour)
	require.NoError(t, err)

	rec, err := runMiddleware(t, userStor, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "sara@test.com", rec.Body.String())
}

func TestTokenAuthRejectsMissingAndBadTokens(t *testing.T) {
	userStor := stor.NewInMemoryUserStor(nil)

	_, err := runMiddleware(t, userStor, "")
	assert.Equal(t, echo.ErrUnauthorized, err)

	_, err = runMiddleware(t, userStor, "Bearer not-a-token")
	assert.Equal(t, echo.ErrUnauthorized, err)

	// Token signed with the wrong secret.
	token, err := GenerateToken(1, "other-secret", time.Hour)
	require.NoError(t, err)
	_, err = runMiddleware(t, userStor, "Bearer "+token)
	assert.Equal(t, echo.ErrUnauthorized, err)
}

func TestTokenAuthRejectsExpiredToken(t *testing.T) {
	userStor := stor.NewInMemoryUserStor(nil)
	user, err := userStor.CreateUser(&smodel.User{Email: "old@test.com"})
	require.NoError(t, err)

	token, err := GenerateToken(user.ID, testSecret, -time.Hour)
	require.NoError(t, err)

	_, err = runMiddleware(t, userStor, "Bearer "+token)
	assert.Equal(t, echo.ErrUnauthorized, err)
}

func TestTokenAuthRejectsDeactivatedUser(t *testing.T) {
	userStor := stor.NewInMemoryUserStor(nil)
	user, err := userStor.CreateUser(&smodel.User{Email: "gone@test.com"})
	require.NoError(t, err)
	require.NoError(t, userStor.DeactivateUser(user.ID))

	token, err := GenerateToken(user.ID, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = runMiddleware(t, userStor, "Bearer "+token)
	assert.Equal(t, echo.ErrUnauthorized, err)
}
