package webapi

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sdb"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testCase struct {
	*testing.T
	e     *echo.Echo
	stors *stor.Stors

	accountService     *service.AccountService
	negotiationService *service.NegotiationService
}

func newTestCase(t *testing.T) *testCase {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoErrorf(t, err, "gorm.Open failed: %s", err)

	sqlitedb, err := db.DB()
	require.NoError(t, err)
	sqlitedb.SetMaxOpenConns(1)

	err = sdb.RunMigrations(db)
	require.NoErrorf(t, err, "Migration failed with: %s", err)

	stors := stor.NewGormStors(db)

	return &testCase{
		T:                  t,
		e:                  echo.New(),
		stors:              stors,
		accountService:     service.NewAccountService(stors),
		negotiationService: service.NewNegotiationService(stors),
	}
}

// doJSON runs a handler against a JSON request and returns the recorder. The
// optional user is placed on the context the way the token middleware would.
func (tc *testCase) doJSON(method, target, body string, user *smodel.User, handler echo.HandlerFunc, pathParams ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := tc.e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}

	if len(pathParams) >= 2 {
		names := make([]string, 0, len(pathParams)/2)
		values := make([]string, 0, len(pathParams)/2)
		for i := 0; i+1 < len(pathParams); i += 2 {
			names = append(names, pathParams[i])
			values = append(values, pathParams[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	err := handler(c)
	if err != nil {
		tc.e.HTTPErrorHandler(err, c)
	}

	return rec
}

func (tc *testCase) createUser(email, role string, staff bool) *smodel.User {
	user, err := tc.stors.UserStor.CreateUser(&smodel.User{
		FirstName: "Test", LastName: "User", Email: email, Role: role, IsStaff: staff,
	})
	require.NoError(tc.T, err)
	return user
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	require.Equalf(t, status, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
