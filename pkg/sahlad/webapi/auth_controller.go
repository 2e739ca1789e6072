package webapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
)

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	accountService *service.AccountService
	jwtSecret      string
}

func NewAuthController(accountService *service.AccountService, jwtSecret string) *AuthController {
	return &AuthController{accountService: accountService, jwtSecret: jwtSecret}
}

func (c *AuthController) RegisterFreelancer(ctx echo.Context) error {
	var req service.RegisterFreelancerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	freelancer, err := c.accountService.RegisterFreelancer(req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, freelancer)
}

func (c *AuthController) RegisterClient(ctx echo.Context) error {
	var req service.RegisterClientRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	client, err := c.accountService.RegisterClient(req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, client)
}

func (c *AuthController) RegisterCompany(ctx echo.Context) error {
	var req service.RegisterCompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	company, err := c.accountService.RegisterCompany(req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, company)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	user, err := c.accountService.Login(req.Email, req.Password)
	if err != nil {
		return jsonError(ctx, err)
	}

	token, err := apimiddleware.GenerateToken(user.ID, c.jwtSecret, tokenLifetime)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout exists for client symmetry. Tokens are stateless, there is nothing
// to revoke server side.
func (c *AuthController) Logout(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"detail": "logged out"})
}
